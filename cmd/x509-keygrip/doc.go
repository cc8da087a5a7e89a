// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-keygrip is a command-line tool that extracts the RSA public key from
// X.509 certificates and prints its modulus, exponent and keygrip.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-keygrip/cmd/x509-keygrip@latest
//
// # Usage
//
//	x509-keygrip -f INPUT_CERT [FLAGS]
//	x509-keygrip token --module /usr/lib/opensc-pkcs11.so [FLAGS]
//
// # Flags
//
//	-f, --file       Input certificate file (PEM, DER or PKCS7) [required]
//	-o, --output     Destination file (default: stdout)
//	    --format     text, json, table, pem or ssh (default: text)
//	    --scheme     Keygrip scheme: canonical or libgcrypt (default: canonical)
//	    --provider   Key provider: x509 or raw (default depends on build tags)
//	    --config     Configuration file (JSON or YAML)
//	    --debug      Debug logging on stderr
//
// The token subcommand reads certificates from a PKCS#11 token and accepts
// --module, --token-label, --token-serial, --slot and --pin. The PIN may also
// come from X509_KEYGRIP_PKCS11_PIN.
//
// # Examples
//
// Print the keygrip of a leaf certificate:
//
//	x509-keygrip -f cert.pem
//
// Emit every key of a PKCS7 bundle as a markdown table:
//
//	x509-keygrip -f bundle.p7b --format table
//
// Export the key as an authorized_keys line:
//
//	x509-keygrip -f cert.pem --format ssh >> ~/.ssh/authorized_keys
//
// # Exit Codes
//
// 0 on success, 1 when no RSA key could be extracted or an error occurred,
// 130 when interrupted.
package main
