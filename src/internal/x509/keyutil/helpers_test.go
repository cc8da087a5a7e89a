// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil_test

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidSHA256WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	oidDSA           = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}
)

type rsaFixture struct {
	key *rsa.PrivateKey
	der []byte
}

var (
	rsaOnce     sync.Once
	rsaFixtures map[int]rsaFixture
	rsaErr      error
)

// rsaCert returns a self-signed certificate for a cached RSA key of the given size.
func rsaCert(t *testing.T, bits int) ([]byte, *rsa.PublicKey) {
	t.Helper()

	rsaOnce.Do(func() {
		rsaFixtures = make(map[int]rsaFixture)
		for _, size := range []int{1024, 2048} {
			key, err := rsa.GenerateKey(rand.Reader, size)
			if err != nil {
				rsaErr = err
				return
			}
			der, err := selfSign(&key.PublicKey, key)
			if err != nil {
				rsaErr = err
				return
			}
			rsaFixtures[size] = rsaFixture{key: key, der: der}
		}
	})
	require.NoError(t, rsaErr, "failed to generate RSA fixtures")

	f, ok := rsaFixtures[bits]
	require.True(t, ok, "no RSA fixture for %d bits", bits)
	return f.der, &f.key.PublicKey
}

func ecdsaCert(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := selfSign(&key.PublicKey, key)
	require.NoError(t, err)
	return der
}

func ed25519Cert(t *testing.T) []byte {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := selfSign(pub, priv)
	require.NoError(t, err)
	return der
}

func selfSign(pub crypto.PublicKey, priv crypto.Signer) ([]byte, error) {
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: "keygrip.test", Organization: []string{"Test Org"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	return x509.CreateCertificate(rand.Reader, tmpl, tmpl, pub, priv)
}

// syntheticCert frames spki in a minimal v3 certificate. The signature is a
// placeholder since nothing here verifies it.
func syntheticCert(t *testing.T, spki func(b *cryptobyte.Builder)) []byte {
	t.Helper()

	sigAlg := func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidSHA256WithRSA)
			b.AddASN1NULL()
		})
	}

	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1(cryptobyte_asn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
				b.AddASN1Int64(2)
			})
			b.AddASN1Int64(42)
			sigAlg(b)
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {})
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1UTCTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
				b.AddASN1UTCTime(time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC))
			})
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {})
			spki(b)
		})
		sigAlg(b)
		b.AddASN1BitString([]byte{0x00})
	})

	der, err := b.Bytes()
	require.NoError(t, err, "failed to build synthetic certificate")
	return der
}

// rsaSPKI encodes an rsaEncryption SubjectPublicKeyInfo. Negative values are
// encoded in two's complement so malformed keys can be produced.
func rsaSPKI(n, e *big.Int) func(b *cryptobyte.Builder) {
	return func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1ObjectIdentifier(oidRSAEncryption)
				b.AddASN1NULL()
			})
			var key cryptobyte.Builder
			key.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1BigInt(n)
				b.AddASN1BigInt(e)
			})
			b.AddASN1BitString(key.BytesOrPanic())
		})
	}
}

// rawRSASPKI encodes an rsaEncryption SubjectPublicKeyInfo from raw INTEGER
// contents, optionally without the NULL algorithm parameters.
func rawRSASPKI(withNULL bool, n, e []byte) func(b *cryptobyte.Builder) {
	return func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1ObjectIdentifier(oidRSAEncryption)
				if withNULL {
					b.AddASN1NULL()
				}
			})
			var key cryptobyte.Builder
			key.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1(cryptobyte_asn1.INTEGER, func(b *cryptobyte.Builder) { b.AddBytes(n) })
				b.AddASN1(cryptobyte_asn1.INTEGER, func(b *cryptobyte.Builder) { b.AddBytes(e) })
			})
			b.AddASN1BitString(key.BytesOrPanic())
		})
	}
}

// dsaSPKI encodes a toy DSA SubjectPublicKeyInfo (p=23, q=11, g=4, y=8).
func dsaSPKI(b *cryptobyte.Builder) {
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidDSA)
			b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1Int64(23)
				b.AddASN1Int64(11)
				b.AddASN1Int64(4)
			})
		})
		var key cryptobyte.Builder
		key.AddASN1Int64(8)
		b.AddASN1BitString(key.BytesOrPanic())
	})
}

// nilPool hands out no buffers, simulating allocation failure.
type nilPool struct{}

func (nilPool) Get() gc.Buffer { return nil }
func (nilPool) Put(b gc.Buffer) {}
