// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"fmt"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-keygrip/src/logger"
)

// Extractor converts DER certificates into [PublicKeyMaterial].
//
// An Extractor holds no mutable state and is safe for concurrent use.
type Extractor struct {
	provider KeyProvider
	pool     gc.Pool
	log      logger.Logger
}

// Option configures an [Extractor].
type Option func(*Extractor)

// WithProvider selects the key provider. A nil provider keeps the default.
func WithProvider(p KeyProvider) Option {
	return func(e *Extractor) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithPool sets the pool scratch buffers are borrowed from. A nil pool keeps [gc.Default].
func WithPool(p gc.Pool) Option {
	return func(e *Extractor) {
		if p != nil {
			e.pool = p
		}
	}
}

// WithLogger sets the logger that receives debug traces.
func WithLogger(l logger.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Extractor using [DefaultProvider] and [gc.Default] unless
// overridden by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		provider: DefaultProvider(),
		pool:     gc.Default,
		log:      logger.NewJSONLogger(nil, true),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Provider returns the provider in use.
func (e *Extractor) Provider() KeyProvider { return e.provider }

// Extract parses der as an X.509 certificate and returns its RSA public key.
//
// It never returns partially populated material. Errors wrap one of
// [ErrBadCertificate], [ErrUnsupportedAlgorithm], [ErrBadKey] or [ErrOutOfMemory].
// Scratch buffers are returned to the pool before Extract returns.
func (e *Extractor) Extract(der []byte) (*PublicKeyMaterial, error) {
	if len(der) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadCertificate)
	}

	s := newScratch(e.pool)
	defer s.Release()

	if err := e.provider.LoadRSA(der, s); err != nil {
		e.log.Debugf("%s provider rejected certificate: %v", e.provider.Name(), err)
		return nil, err
	}

	modulus, err := s.integer(s.modulus, "modulus")
	if err != nil {
		return nil, err
	}
	exponent, err := s.integer(s.exponent, "exponent")
	if err != nil {
		return nil, err
	}

	key, err := NewRSAMaterial(modulus, exponent)
	if err != nil {
		return nil, err
	}

	e.log.Debugf("extracted %d-bit RSA key with %s provider", key.RSA.BitLen(), e.provider.Name())
	return key, nil
}

var defaultExtractor = New()

// ExtractRSAPublicKey extracts with a package level Extractor built from defaults.
func ExtractRSAPublicKey(der []byte) (*PublicKeyMaterial, error) {
	return defaultExtractor.Extract(der)
}
