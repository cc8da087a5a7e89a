// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"crypto/rsa"
	"fmt"
	"math/big"
)

// Algorithm identifies the populated variant of a [PublicKeyMaterial].
type Algorithm int

const (
	// AlgorithmUnknown is the zero value and never appears in extracted material.
	AlgorithmUnknown Algorithm = iota
	// AlgorithmRSA marks material whose RSA field is populated.
	AlgorithmRSA
)

// String returns the lowercase algorithm name used in S-expressions and reports.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmRSA:
		return "rsa"
	default:
		return "unknown"
	}
}

// PublicKeyMaterial is the result of an extraction: a tagged union with exactly
// one populated variant. The caller owns it exclusively.
type PublicKeyMaterial struct {
	Algorithm Algorithm
	RSA       *RSAPublicKey
}

// RSAPublicKey holds the RSA public parameters. Both are strictly positive.
type RSAPublicKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// NewRSAMaterial builds material from a modulus and exponent, copying both.
// It fails with [ErrBadKey] unless 1 < exponent < modulus.
func NewRSAMaterial(modulus, exponent *big.Int) (*PublicKeyMaterial, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrBadKey)
	}
	if exponent == nil || exponent.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: exponent must be greater than one", ErrBadKey)
	}
	if exponent.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: exponent must be smaller than the modulus", ErrBadKey)
	}

	return &PublicKeyMaterial{
		Algorithm: AlgorithmRSA,
		RSA: &RSAPublicKey{
			Modulus:  new(big.Int).Set(modulus),
			Exponent: new(big.Int).Set(exponent),
		},
	}, nil
}

// valid reports whether m is populated RSA material.
func (m *PublicKeyMaterial) valid() bool {
	return m != nil && m.Algorithm == AlgorithmRSA && m.RSA != nil &&
		m.RSA.Modulus != nil && m.RSA.Exponent != nil &&
		m.RSA.Modulus.Sign() > 0 && m.RSA.Exponent.Sign() > 0
}

// BitLen returns the modulus size in bits.
func (k *RSAPublicKey) BitLen() int { return k.Modulus.BitLen() }

// Equal reports whether k and other carry the same parameters.
func (k *RSAPublicKey) Equal(other *RSAPublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.Modulus.Cmp(other.Modulus) == 0 && k.Exponent.Cmp(other.Exponent) == 0
}

// PublicKey converts k into a [rsa.PublicKey]. It fails with [ErrBadKey] when
// the exponent does not fit the int field of the standard library type.
func (k *RSAPublicKey) PublicKey() (*rsa.PublicKey, error) {
	if !k.Exponent.IsInt64() || k.Exponent.Int64() > maxExponent {
		return nil, fmt.Errorf("%w: exponent too large", ErrBadKey)
	}
	return &rsa.PublicKey{
		N: new(big.Int).Set(k.Modulus),
		E: int(k.Exponent.Int64()),
	}, nil
}
