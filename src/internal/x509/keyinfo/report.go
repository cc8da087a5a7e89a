// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyinfo

import (
	"golang.org/x/crypto/ssh"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/hexcodec"
	x509certs "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/certs"
	x509keyutil "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyutil"
)

// Report describes the RSA key of one certificate, or why it has none.
type Report struct {
	Source         string `json:"source"`
	Subject        string `json:"subject,omitempty"`
	Issuer         string `json:"issuer,omitempty"`
	Serial         string `json:"serial,omitempty"`
	Bits           int    `json:"bits,omitempty"`
	Exponent       string `json:"exponent,omitempty"`
	Modulus        string `json:"modulus,omitempty"`
	Keygrip        string `json:"keygrip,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	SSHFingerprint string `json:"sshFingerprint,omitempty"`
	Error          string `json:"error,omitempty"`

	// Err is the extraction failure, nil on success.
	Err error `json:"-"`

	key *x509keyutil.PublicKeyMaterial
}

// OK reports whether the key was extracted.
func (r Report) OK() bool { return r.Err == nil && r.key != nil }

// Key returns the extracted material, or nil when extraction failed.
func (r Report) Key() *x509keyutil.PublicKeyMaterial { return r.key }

// Build extracts the key of der with e and fills a report. Failures are
// recorded in the report rather than returned.
func Build(source string, der []byte, e *x509keyutil.Extractor, scheme x509keyutil.Scheme) Report {
	summary := x509certs.Describe(der)
	r := Report{
		Source:  source,
		Subject: summary.Subject,
		Issuer:  summary.Issuer,
		Serial:  summary.Serial,
	}

	key, err := e.Extract(der)
	if err != nil {
		r.Err = err
		r.Error = err.Error()
		return r
	}

	r.key = key
	r.Bits = key.RSA.BitLen()
	r.Exponent = key.RSA.Exponent.String()
	r.Modulus = hexcodec.Bin2Hex(key.RSA.Modulus.Bytes())
	r.Scheme = scheme.String()

	if grip, ok := x509keyutil.ComputeKeygripScheme(key, scheme); ok {
		r.Keygrip = grip
	}

	if pub, err := sshPublicKey(key); err == nil {
		r.SSHFingerprint = ssh.FingerprintSHA256(pub)
	}

	return r
}

func sshPublicKey(key *x509keyutil.PublicKeyMaterial) (ssh.PublicKey, error) {
	pub, err := key.RSA.PublicKey()
	if err != nil {
		return nil, err
	}
	return ssh.NewPublicKey(pub)
}
