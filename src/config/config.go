// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	x509keyinfo "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyinfo"
	x509keyutil "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyutil"
	x509token "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/token"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile = "X509_KEYGRIP_CONFIG_FILE"
	EnvPKCS11PIN  = "X509_KEYGRIP_PKCS11_PIN"
)

// fileFormat represents supported configuration file formats.
type fileFormat int

const (
	// fileFormatJSON represents JSON configuration format (.json)
	fileFormatJSON fileFormat = iota
	// fileFormatYAML represents YAML configuration format (.yaml, .yml)
	fileFormatYAML
)

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	Extractor struct {
		// Provider: key provider name ("x509" or "raw"). Empty selects the build default.
		Provider string `json:"provider" yaml:"provider"`
	} `json:"extractor" yaml:"extractor"`

	Keygrip struct {
		// Scheme: keygrip scheme ("canonical" or "libgcrypt")
		Scheme string `json:"scheme" yaml:"scheme"`
	} `json:"keygrip" yaml:"keygrip"`

	Output struct {
		// Format: report format (text, json, table, pem, ssh)
		Format string `json:"format" yaml:"format"`
	} `json:"output" yaml:"output"`

	PKCS11 struct {
		Module      string `json:"module,omitempty" yaml:"module,omitempty"`
		TokenLabel  string `json:"tokenLabel,omitempty" yaml:"tokenLabel,omitempty"`
		TokenSerial string `json:"tokenSerial,omitempty" yaml:"tokenSerial,omitempty"`
		Slot        *uint  `json:"slot,omitempty" yaml:"slot,omitempty"`
		// PIN: user PIN (can also be set via X509_KEYGRIP_PKCS11_PIN env var)
		PIN string `json:"pin,omitempty" yaml:"pin,omitempty"`
	} `json:"pkcs11" yaml:"pkcs11"`

	Log struct {
		Debug bool `json:"debug" yaml:"debug"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Keygrip.Scheme) == "" {
		c.Keygrip.Scheme = x509keyutil.SchemeCanonical.String()
	}
	if strings.TrimSpace(c.Output.Format) == "" {
		c.Output.Format = string(x509keyinfo.FormatText)
	}
}

// detectFormat determines the configuration file format based on file extension.
// The match is case-insensitive.
func detectFormat(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return fileFormatYAML
	default:
		return fileFormatJSON
	}
}

func unmarshal(data []byte, c *Config, format fileFormat) error {
	switch format {
	case fileFormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration at path, or at $X509_KEYGRIP_CONFIG_FILE when
// path is empty, on top of the defaults. Without either it returns the defaults.
// The result is validated.
func Load(path string) (*Config, error) {
	c := &Config{}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, c, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	c.applyDefaults()

	if c.PKCS11.PIN == "" {
		c.PKCS11.PIN = os.Getenv(EnvPKCS11PIN)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every unknown provider, scheme or format name.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.KeyProvider(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Scheme(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Format(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyProvider resolves the configured provider.
func (c *Config) KeyProvider() (x509keyutil.KeyProvider, error) {
	return x509keyutil.ProviderByName(c.Extractor.Provider)
}

// Scheme resolves the configured keygrip scheme.
func (c *Config) Scheme() (x509keyutil.Scheme, error) {
	return x509keyutil.ParseScheme(c.Keygrip.Scheme)
}

// Format resolves the configured output format.
func (c *Config) Format() (x509keyinfo.Format, error) {
	return x509keyinfo.ParseFormat(c.Output.Format)
}

// Token returns the PKCS #11 selection.
func (c *Config) Token() x509token.Config {
	return x509token.Config{
		ModulePath:  c.PKCS11.Module,
		TokenLabel:  c.PKCS11.TokenLabel,
		TokenSerial: c.PKCS11.TokenSerial,
		SlotID:      c.PKCS11.Slot,
		PIN:         c.PKCS11.PIN,
	}
}
