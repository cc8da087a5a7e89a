// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-keygrip/src/config"
	"github.com/H0llyW00dzZ/x509-keygrip/src/logger"
)

// Tool names.
const (
	ToolExtractRSAPublicKey = "extract_rsa_public_key"
	ToolComputeKeygrip      = "compute_keygrip"
)

// ToolDefinition pairs an MCP tool specification with its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// createTools returns the tool definitions bound to cfg.
func createTools(cfg *config.Config, log logger.Logger) ([]ToolDefinition, error) {
	ts, err := newToolset(cfg, log)
	if err != nil {
		return nil, err
	}

	return []ToolDefinition{
		{
			Tool: mcp.NewTool(ToolExtractRSAPublicKey,
				mcp.WithDescription("Extract the RSA public key (modulus and exponent) and keygrip from X.509 certificates"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, PEM text or base64-encoded DER/PKCS7 data"),
				),
				mcp.WithString("provider",
					mcp.Description("Key provider: 'x509' or 'raw' (default: "+ts.extractor.Provider().Name()+")"),
				),
			),
			Handler: ts.handleExtractRSAPublicKey,
		},
		{
			Tool: mcp.NewTool(ToolComputeKeygrip,
				mcp.WithDescription("Compute the keygrip of the RSA public key in X.509 certificates"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, PEM text or base64-encoded DER/PKCS7 data"),
				),
				mcp.WithString("scheme",
					mcp.Description("Keygrip scheme: 'canonical' or 'libgcrypt' (default: "+ts.scheme.String()+")"),
					mcp.DefaultString(ts.scheme.String()),
				),
			),
			Handler: ts.handleComputeKeygrip,
		},
	}, nil
}
