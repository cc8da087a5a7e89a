// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// oidPublicKeyRSA is rsaEncryption from PKCS #1.
var oidPublicKeyRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

var (
	tagVersion         = cryptobyte_asn1.Tag(0).Constructed().ContextSpecific()
	tagIssuerUniqueID  = cryptobyte_asn1.Tag(1).ContextSpecific()
	tagSubjectUniqueID = cryptobyte_asn1.Tag(2).ContextSpecific()
	tagExtensions      = cryptobyte_asn1.Tag(3).Constructed().ContextSpecific()
)

// RawProvider extracts keys by walking the DER certificate structure with
// cryptobyte and copying the raw INTEGER contents of the RSAPublicKey. It does
// not interpret extensions, names or validity.
type RawProvider struct{}

// Name returns [ProviderRaw].
func (RawProvider) Name() string { return ProviderRaw }

// LoadRSA implements [KeyProvider].
func (RawProvider) LoadRSA(der []byte, s *Scratch) error {
	spki, err := readSubjectPublicKeyInfo(der)
	if err != nil {
		return err
	}

	var algorithm cryptobyte.String
	var oid asn1.ObjectIdentifier
	if !spki.ReadASN1(&algorithm, cryptobyte_asn1.SEQUENCE) ||
		!algorithm.ReadASN1ObjectIdentifier(&oid) {
		return fmt.Errorf("%w: malformed public key algorithm", ErrBadCertificate)
	}
	if !oid.Equal(oidPublicKeyRSA) {
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, oid)
	}
	var null cryptobyte.String
	if !algorithm.ReadASN1(&null, cryptobyte_asn1.NULL) || len(null) != 0 || !algorithm.Empty() {
		return fmt.Errorf("%w: RSA key missing NULL parameters", ErrBadCertificate)
	}

	var bits asn1.BitString
	if !spki.ReadASN1BitString(&bits) || !spki.Empty() {
		return fmt.Errorf("%w: malformed subject public key", ErrBadCertificate)
	}
	if bits.BitLength%8 != 0 {
		return fmt.Errorf("%w: public key is not byte aligned", ErrBadKey)
	}

	key := cryptobyte.String(bits.Bytes)
	var params, n, e cryptobyte.String
	if !key.ReadASN1(&params, cryptobyte_asn1.SEQUENCE) || !key.Empty() ||
		!params.ReadASN1(&n, cryptobyte_asn1.INTEGER) ||
		!params.ReadASN1(&e, cryptobyte_asn1.INTEGER) ||
		!params.Empty() {
		return fmt.Errorf("%w: malformed RSAPublicKey", ErrBadKey)
	}

	if err := checkUnsigned(n, "modulus"); err != nil {
		return err
	}
	if err := checkUnsigned(e, "exponent"); err != nil {
		return err
	}
	if exponentTooLarge(e) {
		return fmt.Errorf("%w: invalid RSA public exponent", ErrBadCertificate)
	}

	if err := s.SetModulus(n); err != nil {
		return err
	}
	return s.SetExponent(e)
}

// readSubjectPublicKeyInfo walks Certificate and TBSCertificate down to the
// SubjectPublicKeyInfo, validating the framing of every field on the way.
func readSubjectPublicKeyInfo(der []byte) (cryptobyte.String, error) {
	input := cryptobyte.String(der)

	var cert, tbs, spki cryptobyte.String
	if !input.ReadASN1(&cert, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: malformed certificate", ErrBadCertificate)
	}
	if !cert.ReadASN1(&tbs, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed tbsCertificate", ErrBadCertificate)
	}
	if !cert.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!cert.SkipASN1(cryptobyte_asn1.BIT_STRING) ||
		!cert.Empty() {
		return nil, fmt.Errorf("%w: malformed signature", ErrBadCertificate)
	}

	if !tbs.SkipOptionalASN1(tagVersion) ||
		!tbs.SkipASN1(cryptobyte_asn1.INTEGER) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed tbsCertificate header", ErrBadCertificate)
	}

	if !tbs.ReadASN1(&spki, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: missing subject public key info", ErrBadCertificate)
	}

	if !tbs.SkipOptionalASN1(tagIssuerUniqueID) ||
		!tbs.SkipOptionalASN1(tagSubjectUniqueID) ||
		!tbs.SkipOptionalASN1(tagExtensions) ||
		!tbs.Empty() {
		return nil, fmt.Errorf("%w: trailing tbsCertificate data", ErrBadCertificate)
	}

	return spki, nil
}

// checkUnsigned rejects empty, non-minimal and negative two's complement
// INTEGER contents.
func checkUnsigned(v cryptobyte.String, name string) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: empty %s", ErrBadKey, name)
	}
	if len(v) > 1 && (v[0] == 0x00 && v[1]&0x80 == 0 || v[0] == 0xff && v[1]&0x80 != 0) {
		return fmt.Errorf("%w: non-minimal %s encoding", ErrBadCertificate, name)
	}
	if v[0]&0x80 != 0 {
		return fmt.Errorf("%w: negative %s", ErrBadKey, name)
	}
	return nil
}

// exponentTooLarge reports whether the minimal unsigned INTEGER e exceeds maxExponent.
func exponentTooLarge(e cryptobyte.String) bool {
	if e[0] == 0x00 {
		e = e[1:]
	}
	if len(e) > 4 {
		return true
	}
	var v uint64
	for _, b := range e {
		v = v<<8 | uint64(b)
	}
	return v > maxExponent
}
