// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/certs"
	x509keyinfo "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyinfo"
	x509keyutil "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyutil"
	"github.com/H0llyW00dzZ/x509-keygrip/src/logger"
)

// errInvalidInput is returned when the certificate argument is neither a
// readable file, PEM text nor base64 data.
var errInvalidInput = errors.New("mcpserver: not a valid file path, PEM text or base64 data")

// toolset holds what the tool handlers share across requests.
type toolset struct {
	extractor *x509keyutil.Extractor
	scheme    x509keyutil.Scheme
	log       logger.Logger
}

func (ts *toolset) handleExtractRSAPublicKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	extractor := ts.extractor
	if name := request.GetString("provider", ""); name != "" {
		provider, err := x509keyutil.ProviderByName(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		extractor = x509keyutil.New(
			x509keyutil.WithProvider(provider),
			x509keyutil.WithLogger(ts.log),
		)
	}

	reports, err := ts.reports(ctx, certInput, extractor, ts.scheme)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	if err := x509keyinfo.Render(buf, x509keyinfo.FormatJSON, reports); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render reports: %v", err)), nil
	}

	if !anyOK(reports) {
		return mcp.NewToolResultError(fmt.Sprintf("failed to extract RSA public key: %s", buf.String())), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (ts *toolset) handleComputeKeygrip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	scheme, err := x509keyutil.ParseScheme(request.GetString("scheme", ts.scheme.String()))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reports, err := ts.reports(ctx, certInput, ts.extractor, scheme)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var (
		lines    strings.Builder
		firstErr error
	)
	for _, r := range reports {
		if !r.OK() || r.Keygrip == "" {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		fmt.Fprintf(&lines, "%s %s\n", r.Keygrip, r.Source)
	}

	if lines.Len() == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute keygrip: %v", firstErr)), nil
	}
	return mcp.NewToolResultText(lines.String()), nil
}

// reports decodes certInput and builds one report per certificate.
func (ts *toolset) reports(ctx context.Context, certInput string, e *x509keyutil.Extractor, scheme x509keyutil.Scheme) ([]x509keyinfo.Report, error) {
	source, data, err := readCertificate(certInput)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}

	ders, err := x509certs.New().DecodeDER(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode certificate: %w", err)
	}
	ts.log.Debugf("decoded %d certificate(s) from %s", len(ders), source)

	reports := make([]x509keyinfo.Report, 0, len(ders))
	for i, der := range ders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := source
		if len(ders) > 1 {
			name = fmt.Sprintf("%s[%d]", source, i)
		}
		reports = append(reports, x509keyinfo.Build(name, der, e, scheme))
	}
	return reports, nil
}

// readCertificate resolves the certificate argument. Files win over inline
// data. The returned source names where the bytes came from.
func readCertificate(input string) (string, []byte, error) {
	if data, err := os.ReadFile(input); err == nil {
		return input, data, nil
	}

	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "-----BEGIN") {
		return "pem", []byte(trimmed), nil
	}

	// Line breaks are common in pasted base64.
	compact := strings.Join(strings.Fields(trimmed), "")
	if decoded, err := base64.StdEncoding.DecodeString(compact); err == nil && len(decoded) > 0 {
		return "base64", decoded, nil
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(compact); err == nil && len(decoded) > 0 {
		return "base64", decoded, nil
	}

	return "", nil, errInvalidInput
}

func anyOK(reports []x509keyinfo.Report) bool {
	for _, r := range reports {
		if r.OK() {
			return true
		}
	}
	return false
}
