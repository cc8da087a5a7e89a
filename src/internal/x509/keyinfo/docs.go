// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509keyinfo builds per-certificate key reports and renders them as
// plain text, JSON, a markdown table, a PEM public key or an OpenSSH
// authorized_keys line.
package x509keyinfo
