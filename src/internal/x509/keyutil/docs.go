// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509keyutil converts the RSA public key embedded in a DER encoded [X.509]
// certificate into a [PublicKeyMaterial] value (modulus and exponent) for a signing
// engine, and derives its keygrip.
//
// Extraction is delegated to a [KeyProvider]. Two providers exist, one per library:
//   - [X509Provider] parses with crypto/x509 and goes through a hex intermediate.
//   - [RawProvider] walks the DER structure with [cryptobyte] and copies the raw
//     INTEGER contents of the RSAPublicKey.
//
// The default is chosen at build time: the rawspki build tag selects [RawProvider].
// Every intermediate buffer borrowed during one extraction is returned to its pool
// before [Extractor.Extract] returns, on success and on every failure path.
//
// [X.509]: https://grokipedia.com/page/X.509
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
package x509keyutil
