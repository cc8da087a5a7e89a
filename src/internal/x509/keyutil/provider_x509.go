// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/hexcodec"
)

// X509Provider extracts keys with the standard library certificate parser.
// The big integers of the parsed key are rendered to hex into scratch buffers
// and decoded back to raw bytes, so the components always leave the provider
// in the same unsigned big-endian form as [RawProvider] produces.
type X509Provider struct{}

// Name returns [ProviderX509].
func (X509Provider) Name() string { return ProviderX509 }

// LoadRSA implements [KeyProvider].
func (X509Provider) LoadRSA(der []byte, s *Scratch) error {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadCertificate, err)
	}

	if cert.PublicKeyAlgorithm != x509.RSA {
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, cert.PublicKeyAlgorithm)
	}

	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok || pub == nil {
		return fmt.Errorf("%w: missing RSA public key", ErrBadCertificate)
	}
	if pub.N == nil {
		return fmt.Errorf("%w: missing modulus", ErrBadKey)
	}
	if pub.E > maxExponent {
		return fmt.Errorf("%w: invalid RSA public exponent", ErrBadCertificate)
	}

	n, err := hexIntermediate(s, pub.N)
	if err != nil {
		return err
	}
	e, err := hexIntermediate(s, big.NewInt(int64(pub.E)))
	if err != nil {
		return err
	}

	if err := s.SetModulus(n); err != nil {
		return err
	}
	return s.SetExponent(e)
}

// hexIntermediate renders v as even-length hex into a scratch buffer and
// decodes it back into raw bytes.
func hexIntermediate(s *Scratch, v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative integer", ErrBadKey)
	}

	buf, err := s.Acquire()
	if err != nil {
		return nil, err
	}
	writeHex(buf, v)

	raw, err := hexcodec.Hex2Bin(buf.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}
	return raw, nil
}

func writeHex(buf gc.Buffer, v *big.Int) {
	text := v.Text(16)
	if len(text)%2 != 0 {
		buf.WriteByte('0')
	}
	buf.WriteString(text)
}
