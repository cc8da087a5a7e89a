// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-keygrip/src/config"
	x509keyinfo "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyinfo"
	x509keyutil "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvPKCS11PIN, "")

	c, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "canonical", c.Keygrip.Scheme)
	assert.Equal(t, "text", c.Output.Format)
	assert.Empty(t, c.Extractor.Provider)
	assert.False(t, c.Log.Debug)

	p, err := c.KeyProvider()
	require.NoError(t, err)
	assert.Equal(t, x509keyutil.DefaultProvider().Name(), p.Name())
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantSlot uint
	}{
		{
			name: "JSON",
			file: "keygrip.json",
			content: `{
  "extractor": {"provider": "raw"},
  "keygrip": {"scheme": "libgcrypt"},
  "output": {"format": "table"},
  "pkcs11": {"module": "/usr/lib/softhsm/libsofthsm2.so", "tokenLabel": "card", "slot": 2, "pin": "1234"},
  "log": {"debug": true}
}`,
			wantSlot: 2,
		},
		{
			name: "YAML",
			file: "keygrip.yaml",
			content: `extractor:
  provider: raw
keygrip:
  scheme: libgcrypt
output:
  format: table
pkcs11:
  module: /usr/lib/softhsm/libsofthsm2.so
  tokenLabel: card
  slot: 2
  pin: "1234"
log:
  debug: true
`,
			wantSlot: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := config.Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			p, err := c.KeyProvider()
			require.NoError(t, err)
			assert.Equal(t, x509keyutil.ProviderRaw, p.Name())

			scheme, err := c.Scheme()
			require.NoError(t, err)
			assert.Equal(t, x509keyutil.SchemeLibgcrypt, scheme)

			format, err := c.Format()
			require.NoError(t, err)
			assert.Equal(t, x509keyinfo.FormatTable, format)

			assert.True(t, c.Log.Debug)

			tok := c.Token()
			assert.Equal(t, "/usr/lib/softhsm/libsofthsm2.so", tok.ModulePath)
			assert.Equal(t, "card", tok.TokenLabel)
			assert.Equal(t, "1234", tok.PIN)
			require.NotNil(t, tok.SlotID)
			assert.Equal(t, tt.wantSlot, *tok.SlotID)
		})
	}
}

func TestLoad_Env(t *testing.T) {
	path := writeFile(t, "keygrip.yml", "output:\n  format: json\n")
	t.Setenv(config.EnvConfigFile, path)
	t.Setenv(config.EnvPKCS11PIN, "from-env")

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Output.Format)
	assert.Equal(t, "from-env", c.PKCS11.PIN)
	assert.Equal(t, "canonical", c.Keygrip.Scheme, "defaults fill unset keys")
}

func TestLoad_FilePINWins(t *testing.T) {
	t.Setenv(config.EnvPKCS11PIN, "from-env")

	c, err := config.Load(writeFile(t, "keygrip.json", `{"pkcs11": {"pin": "from-file"}}`))
	require.NoError(t, err)
	assert.Equal(t, "from-file", c.PKCS11.PIN)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
		wantMsg string
	}{
		{
			name:    "Missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			wantErr: os.ErrNotExist,
		},
		{
			name:    "Bad JSON",
			path:    func(t *testing.T) string { return writeFile(t, "bad.json", "{") },
			wantMsg: "failed to parse JSON config file",
		},
		{
			name:    "Bad YAML",
			path:    func(t *testing.T) string { return writeFile(t, "bad.yaml", "output: [") },
			wantMsg: "failed to parse YAML config file",
		},
		{
			name: "Unknown provider",
			path: func(t *testing.T) string {
				return writeFile(t, "p.json", `{"extractor": {"provider": "gnutls"}}`)
			},
			wantErr: x509keyutil.ErrUnknownProvider,
		},
		{
			name: "Unknown scheme",
			path: func(t *testing.T) string {
				return writeFile(t, "s.json", `{"keygrip": {"scheme": "sha256"}}`)
			},
			wantErr: x509keyutil.ErrUnknownScheme,
		},
		{
			name: "Unknown format",
			path: func(t *testing.T) string {
				return writeFile(t, "f.json", `{"output": {"format": "xml"}}`)
			},
			wantErr: x509keyinfo.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := config.Load(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	c := config.Default()
	c.Extractor.Provider = "nope"
	c.Output.Format = "nope"

	err := c.Validate()
	assert.ErrorIs(t, err, x509keyutil.ErrUnknownProvider)
	assert.ErrorIs(t, err, x509keyinfo.ErrUnknownFormat)
	assert.NotErrorIs(t, err, x509keyutil.ErrUnknownScheme)
}
