// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-keygrip-mcp is a Model Context Protocol (MCP) server that exposes RSA
// public key extraction and keygrip computation over stdio.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/x509-keygrip/cmd/x509-keygrip-mcp@latest
//
// # Environment Variables
//
//	X509_KEYGRIP_CONFIG_FILE  Path to configuration file (JSON or YAML)
//
// # MCP Tools
//
//   - extract_rsa_public_key: JSON key reports for a certificate file path, PEM text or base64 payload
//   - compute_keygrip: one "<keygrip> <source>" line per RSA certificate
//
// Logging is silent unless log.debug is set in the configuration, in which
// case JSON log entries are written to stderr.
package main
