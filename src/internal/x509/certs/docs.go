// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs turns certificate inputs into raw DER for key extraction.
// It accepts [PEM], DER, and [PKCS7] bundles, and provides small helpers for
// encoding PEM output and summarizing certificates in reports.
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
