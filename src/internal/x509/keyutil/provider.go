// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"fmt"
	"math"
	"strings"
)

// Provider names accepted by [ProviderByName].
const (
	ProviderX509 = "x509"
	ProviderRaw  = "raw"
)

// maxExponent is the largest public exponent either provider accepts. It is
// the crypto/rsa limit, so every extracted key converts with [RSAPublicKey.PublicKey].
const maxExponent = math.MaxInt32

// KeyProvider yields the raw RSA modulus and exponent of a DER certificate.
//
// LoadRSA parses der, retrieves the public key descriptor, checks that the key
// algorithm is RSA and stores the unsigned big-endian components with
// [Scratch.SetModulus] and [Scratch.SetExponent]. Any other intermediate must be
// borrowed through [Scratch.Acquire] so the caller can release it. Errors wrap
// [ErrBadCertificate], [ErrUnsupportedAlgorithm], [ErrBadKey] or [ErrOutOfMemory].
//
// Implementations must be safe for concurrent use.
type KeyProvider interface {
	Name() string
	LoadRSA(der []byte, s *Scratch) error
}

// DefaultProvider returns the provider selected at build time.
func DefaultProvider() KeyProvider { return defaultProvider() }

// ProviderByName returns the provider registered under name. An empty name
// yields [DefaultProvider].
func ProviderByName(name string) (KeyProvider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultProvider(), nil
	case ProviderX509:
		return X509Provider{}, nil
	case ProviderRaw:
		return RawProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}
