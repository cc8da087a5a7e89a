// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// PEM block types understood by [Decoder].
const (
	BlockCertificate = "CERTIFICATE"
	BlockPKCS7       = "PKCS7"
	BlockPublicKey   = "PUBLIC KEY"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not a certificate or PKCS7 bundle.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrNoCertificate indicates that the input carried no certificate at all.
	ErrNoCertificate = errors.New("x509certs: no certificate found")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// Decoder splits certificate inputs into raw DER certificates.
//
// It only frames the input. Keys are never interpreted here, so a malformed
// certificate is passed through unchanged and rejected later by the extractor.
type Decoder struct {
	certBlockType  string
	pkcs7BlockType string
}

// New creates a new Decoder with default settings.
func New() *Decoder {
	return &Decoder{
		certBlockType:  BlockCertificate,
		pkcs7BlockType: BlockPKCS7,
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeDER returns the DER certificates contained in data.
//
// data may be one or more PEM blocks, a single DER certificate, a DER
// concatenation, or a PKCS7 bundle in PEM or DER form.
func (d *Decoder) DecodeDER(data []byte) ([][]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoCertificate
	}

	if d.IsPEM(data) {
		return d.decodePEM(data)
	}

	return d.decodeBinary(data)
}

func (d *Decoder) decodePEM(data []byte) ([][]byte, error) {
	var ders [][]byte

	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}

		switch block.Type {
		case d.certBlockType:
			ders = append(ders, block.Bytes)
		case d.pkcs7BlockType:
			certs, err := decodePKCS7(block.Bytes)
			if err != nil {
				return nil, err
			}
			ders = append(ders, certs...)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidBlockType, block.Type)
		}

		data = rest
	}

	if len(ders) == 0 {
		return nil, ErrInvalidPEMBlock
	}
	return ders, nil
}

func (d *Decoder) decodeBinary(data []byte) ([][]byte, error) {
	if isContentInfo(data) {
		return decodePKCS7(data)
	}

	input := cryptobyte.String(data)
	var ders [][]byte
	for !input.Empty() {
		var elem cryptobyte.String
		if !input.ReadASN1Element(&elem, cryptobyte_asn1.SEQUENCE) {
			// Not a clean concatenation. Hand the whole input to the
			// extractor, which reports why it is not a certificate.
			return [][]byte{data}, nil
		}
		ders = append(ders, elem)
	}
	return ders, nil
}

// isContentInfo reports whether data starts like a PKCS7 ContentInfo, which is
// a SEQUENCE opening with an OBJECT IDENTIFIER. Certificates open with a SEQUENCE.
func isContentInfo(data []byte) bool {
	input := cryptobyte.String(data)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return false
	}
	return seq.PeekASN1Tag(cryptobyte_asn1.OBJECT_IDENTIFIER)
}

func decodePKCS7(data []byte) ([][]byte, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	ders := make([][]byte, 0, len(p.Content.SignedData.Certificates))
	for _, cert := range p.Content.SignedData.Certificates {
		ders = append(ders, cert.Raw)
	}
	return ders, nil
}

// EncodePEM wraps der in a PEM block of the given type.
func EncodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

// Summary carries the descriptive fields of a certificate for reports.
type Summary struct {
	Subject   string
	Issuer    string
	Serial    string
	NotBefore time.Time
	NotAfter  time.Time
}

// Describe summarizes der. It returns the zero Summary when der does not parse.
func Describe(der []byte) Summary {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return Summary{}
	}
	return Summary{
		Subject:   cert.Subject.String(),
		Issuer:    cert.Issuer.String(),
		Serial:    cert.SerialNumber.Text(16),
		NotBefore: cert.NotBefore,
		NotAfter:  cert.NotAfter,
	}
}
