// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for x509-keygrip.
// It implements a Cobra-based CLI that extracts the RSA public key of every
// certificate in a PEM, DER or PKCS7 input, or on a PKCS#11 token, and reports
// its modulus, exponent and keygrip as text, JSON, a markdown table, PEM or an
// OpenSSH authorized_keys line.
//
// Flags override the configuration file loaded by the config package. The
// context passed to [Execute] is checked between certificates.
package cli
