// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509token reads X.509 certificate objects from a [PKCS #11] token,
// such as a smartcard, so their RSA keys can be extracted and keygripped.
//
// The implementation needs cgo. Builds without cgo compile a stub whose [List]
// always fails with [ErrUnsupported].
//
// [PKCS #11]: https://grokipedia.com/page/PKCS_11
package x509token
