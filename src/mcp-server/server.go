// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-keygrip/src/config"
	x509keyutil "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyutil"
	"github.com/H0llyW00dzZ/x509-keygrip/src/logger"
	"github.com/H0llyW00dzZ/x509-keygrip/src/version"
)

const serverName = "X.509 RSA Keygrip"

var appVersion = version.Version // default version

// GetVersion returns the version reported by the running server.
func GetVersion() string {
	return appVersion
}

// Run loads configuration from configPath (or the environment) and serves
// the keygrip tools on stdin/stdout until SIGINT or SIGTERM.
//
// A signal-triggered shutdown returns nil.
func Run(version, configPath string) error {
	appVersion = version

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	log := logger.NewJSONLogger(os.Stderr, !cfg.Log.Debug)
	log.SetDebug(cfg.Log.Debug)

	s, err := NewServer(cfg, version, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Debugf("shutting down: %v", ctx.Err())
		return nil
	}
}

// NewServer builds an MCP server with the keygrip tools registered. A nil
// log discards output.
func NewServer(cfg *config.Config, version string, log logger.Logger) (*server.MCPServer, error) {
	tools, err := createTools(cfg, log)
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)
	for _, t := range tools {
		s.AddTool(t.Tool, t.Handler)
	}
	return s, nil
}

// newToolset validates cfg and builds the shared state behind the tool handlers.
func newToolset(cfg *config.Config, log logger.Logger) (*toolset, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewJSONLogger(nil, true)
	}

	provider, _ := cfg.KeyProvider()
	scheme, _ := cfg.Scheme()

	return &toolset{
		log:    log,
		scheme: scheme,
		extractor: x509keyutil.New(
			x509keyutil.WithProvider(provider),
			x509keyutil.WithLogger(log),
		),
	}, nil
}
