// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes RSA public key extraction and keygrip computation
// as Model Context Protocol ([MCP]) tools served over stdio.
//
// Two tools are registered:
//
//   - extract_rsa_public_key: decodes the certificates in a file path, PEM
//     text or base64 data and returns their key reports as JSON
//   - compute_keygrip: returns one "<keygrip> <source>" line per RSA certificate
//
// Settings come from [config.Load]. Logs go through a silent JSON logger so
// nothing is written to the stdio protocol stream, unless debug logging is
// enabled, in which case entries go to stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
