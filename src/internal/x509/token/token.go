// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported indicates a build without PKCS #11 support.
	ErrUnsupported = errors.New("x509token: PKCS#11 support requires cgo")

	// ErrTokenNotFound indicates that no slot matched the configured token.
	ErrTokenNotFound = errors.New("x509token: token not found")

	// ErrModuleLoad indicates the PKCS #11 module could not be loaded or initialized.
	ErrModuleLoad = errors.New("x509token: failed to load PKCS#11 module")
)

// Config selects a module and a token inside it.
//
// Slot selection order is SlotID, then TokenLabel, then TokenSerial, then the
// first slot holding a token. Login happens only when PIN is set.
type Config struct {
	ModulePath  string
	TokenLabel  string
	TokenSerial string
	SlotID      *uint
	PIN         string
}

// Object is a certificate stored on the token.
type Object struct {
	Slot  uint
	ID    []byte
	Label string
	DER   []byte
}

// Source names the object for reports, for example "pkcs11:slot=0;id=01;label=Auth".
func (o Object) Source() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pkcs11:slot=%d", o.Slot)
	if len(o.ID) > 0 {
		fmt.Fprintf(&b, ";id=%x", o.ID)
	}
	if o.Label != "" {
		b.WriteString(";label=")
		b.WriteString(o.Label)
	}
	return b.String()
}

func (c Config) validate() error {
	if strings.TrimSpace(c.ModulePath) == "" {
		return fmt.Errorf("%w: module path is required", ErrModuleLoad)
	}
	return nil
}
