// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"crypto/sha1"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/hexcodec"
)

// KeygripSize is the size of a binary keygrip in bytes.
const KeygripSize = sha1.Size

// Scheme selects what a keygrip digests.
type Scheme int

const (
	// SchemeCanonical digests the whole canonical S-expression
	// (public-key (rsa (n N) (e E))), so modulus and exponent both count.
	SchemeCanonical Scheme = iota
	// SchemeLibgcrypt digests only the modulus MPI, which is what gpg-agent
	// computes for RSA keys.
	SchemeLibgcrypt
)

// String returns the scheme name accepted by [ParseScheme].
func (s Scheme) String() string {
	switch s {
	case SchemeCanonical:
		return "canonical"
	case SchemeLibgcrypt:
		return "libgcrypt"
	default:
		return "scheme(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseScheme maps a configuration name to a Scheme. An empty name yields
// [SchemeCanonical].
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "canonical", "sexp":
		return SchemeCanonical, nil
	case "libgcrypt", "gcrypt", "gpg":
		return SchemeLibgcrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// ComputeKeygrip returns the 40 character lowercase hex keygrip of key under
// [SchemeCanonical]. It reports false instead of failing when key is not
// populated RSA material.
func ComputeKeygrip(key *PublicKeyMaterial) (string, bool) {
	return ComputeKeygripScheme(key, SchemeCanonical)
}

// ComputeKeygripScheme is [ComputeKeygrip] with an explicit scheme.
func ComputeKeygripScheme(key *PublicKeyMaterial, scheme Scheme) (string, bool) {
	grip, ok := keygrip(key, scheme)
	if !ok {
		return "", false
	}
	return hexcodec.Bin2Hex(grip[:]), true
}

func keygrip(key *PublicKeyMaterial, scheme Scheme) ([KeygripSize]byte, bool) {
	var grip [KeygripSize]byte
	if !key.valid() {
		return grip, false
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	switch scheme {
	case SchemeCanonical:
		writeSExpression(buf, key)
	case SchemeLibgcrypt:
		buf.Write(mpi(key.RSA.Modulus))
	default:
		return grip, false
	}

	return sha1.Sum(buf.Bytes()), true
}

// CanonicalSExpression returns the canonical encoding
// (10:public-key(3:rsa(1:n<len>:<n>)(1:e<len>:<e>))) of key.
func CanonicalSExpression(key *PublicKeyMaterial) ([]byte, error) {
	if !key.valid() {
		return nil, fmt.Errorf("%w: not RSA key material", ErrBadKey)
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	writeSExpression(buf, key)
	return append([]byte(nil), buf.Bytes()...), nil
}

func writeSExpression(buf gc.Buffer, key *PublicKeyMaterial) {
	buf.WriteByte('(')
	writeAtom(buf, []byte("public-key"))
	buf.WriteByte('(')
	writeAtom(buf, []byte(AlgorithmRSA.String()))
	writeParam(buf, "n", key.RSA.Modulus)
	writeParam(buf, "e", key.RSA.Exponent)
	buf.WriteString("))")
}

func writeParam(buf gc.Buffer, name string, v *big.Int) {
	buf.WriteByte('(')
	writeAtom(buf, []byte(name))
	writeAtom(buf, mpi(v))
	buf.WriteByte(')')
}

func writeAtom(buf gc.Buffer, data []byte) {
	buf.WriteString(strconv.Itoa(len(data)))
	buf.WriteByte(':')
	buf.Write(data)
}

// mpi encodes a non-negative integer in the signed big-endian form used by
// libgcrypt S-expressions: a 0x00 byte is prepended when the top bit is set.
func mpi(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}
