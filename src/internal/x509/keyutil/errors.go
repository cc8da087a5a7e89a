// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import "errors"

var (
	// ErrBadCertificate indicates the input is not a well-formed DER certificate
	// or its public key descriptor cannot be retrieved.
	ErrBadCertificate = errors.New("x509keyutil: bad certificate")

	// ErrUnsupportedAlgorithm indicates a public key algorithm other than RSA.
	ErrUnsupportedAlgorithm = errors.New("x509keyutil: unsupported public key algorithm")

	// ErrBadKey indicates an RSA key that is present but cannot be decoded into
	// valid integers or built into a [PublicKeyMaterial].
	ErrBadKey = errors.New("x509keyutil: bad key")

	// ErrOutOfMemory indicates a scratch pool could not hand out a buffer.
	ErrOutOfMemory = errors.New("x509keyutil: out of memory")

	// ErrUnknownProvider indicates a provider name that is not registered.
	ErrUnknownProvider = errors.New("x509keyutil: unknown key provider")

	// ErrUnknownScheme indicates a keygrip scheme name that is not supported.
	ErrUnknownScheme = errors.New("x509keyutil: unknown keygrip scheme")
)
