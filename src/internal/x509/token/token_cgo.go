// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build cgo

package x509token

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/pkcs11"
)

// findBatch is how many object handles are requested per FindObjects call.
const findBatch = 16

// List returns every X.509 certificate object on the selected token.
//
// The context is checked between objects. The module is never finalized since
// C_Finalize affects every PKCS #11 user in the process.
func List(ctx context.Context, cfg Config) ([]Object, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p11 := pkcs11.New(cfg.ModulePath)
	if p11 == nil {
		return nil, fmt.Errorf("%w: %s", ErrModuleLoad, cfg.ModulePath)
	}
	defer p11.Destroy()

	if err := p11.Initialize(); err != nil {
		if p11err, ok := err.(pkcs11.Error); !ok || p11err != pkcs11.CKR_CRYPTOKI_ALREADY_INITIALIZED {
			return nil, fmt.Errorf("%w: %v", ErrModuleLoad, err)
		}
	}

	slot, err := findSlot(p11, cfg)
	if err != nil {
		return nil, err
	}

	session, err := p11.OpenSession(slot, pkcs11.CKF_SERIAL_SESSION)
	if err != nil {
		return nil, fmt.Errorf("x509token: failed to open session: %w", err)
	}
	defer func() { _ = p11.CloseSession(session) }()

	if cfg.PIN != "" {
		if err := p11.Login(session, pkcs11.CKU_USER, cfg.PIN); err != nil {
			if e, ok := err.(pkcs11.Error); !ok || e != pkcs11.CKR_USER_ALREADY_LOGGED_IN {
				return nil, fmt.Errorf("x509token: failed to login: %w", err)
			}
		}
		defer func() { _ = p11.Logout(session) }()
	}

	handles, err := findCertificates(p11, session)
	if err != nil {
		return nil, err
	}

	objects := make([]Object, 0, len(handles))
	for _, h := range handles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attrs, err := p11.GetAttributeValue(session, h, []*pkcs11.Attribute{
			pkcs11.NewAttribute(pkcs11.CKA_VALUE, nil),
			pkcs11.NewAttribute(pkcs11.CKA_ID, nil),
			pkcs11.NewAttribute(pkcs11.CKA_LABEL, nil),
		})
		if err != nil {
			return nil, fmt.Errorf("x509token: failed to read certificate object: %w", err)
		}

		obj := Object{Slot: slot}
		for _, a := range attrs {
			switch a.Type {
			case pkcs11.CKA_VALUE:
				obj.DER = a.Value
			case pkcs11.CKA_ID:
				obj.ID = a.Value
			case pkcs11.CKA_LABEL:
				obj.Label = string(a.Value)
			}
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func findSlot(p11 *pkcs11.Ctx, cfg Config) (uint, error) {
	if cfg.SlotID != nil {
		return *cfg.SlotID, nil
	}

	slots, err := p11.GetSlotList(true)
	if err != nil {
		return 0, fmt.Errorf("x509token: failed to get slot list: %w", err)
	}
	if len(slots) == 0 {
		return 0, fmt.Errorf("%w: no slots with tokens", ErrTokenNotFound)
	}

	label := strings.TrimSpace(cfg.TokenLabel)
	serial := strings.TrimSpace(cfg.TokenSerial)

	for _, slot := range slots {
		info, err := p11.GetTokenInfo(slot)
		if err != nil {
			continue
		}
		if label != "" && strings.TrimSpace(info.Label) == label {
			return slot, nil
		}
		if serial != "" && strings.TrimSpace(info.SerialNumber) == serial {
			return slot, nil
		}
	}

	switch {
	case label != "":
		return 0, fmt.Errorf("%w: label %q", ErrTokenNotFound, label)
	case serial != "":
		return 0, fmt.Errorf("%w: serial %q", ErrTokenNotFound, serial)
	}
	return slots[0], nil
}

func findCertificates(p11 *pkcs11.Ctx, session pkcs11.SessionHandle) ([]pkcs11.ObjectHandle, error) {
	template := []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_CLASS, pkcs11.CKO_CERTIFICATE),
		pkcs11.NewAttribute(pkcs11.CKA_CERTIFICATE_TYPE, pkcs11.CKC_X_509),
	}

	if err := p11.FindObjectsInit(session, template); err != nil {
		return nil, fmt.Errorf("x509token: failed to init find: %w", err)
	}
	defer func() { _ = p11.FindObjectsFinal(session) }()

	var handles []pkcs11.ObjectHandle
	for {
		objs, _, err := p11.FindObjects(session, findBatch)
		if err != nil {
			return nil, fmt.Errorf("x509token: failed to find certificates: %w", err)
		}
		if len(objs) == 0 {
			return handles, nil
		}
		handles = append(handles, objs...)
	}
}
