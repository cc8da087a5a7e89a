// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyinfo

import (
	"bytes"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/crypto/ssh"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/certs"
)

// Format selects a renderer.
type Format string

// Supported output formats.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatPEM   Format = "pem"
	FormatSSH   Format = "ssh"
)

// ErrUnknownFormat indicates an output format without a renderer.
var ErrUnknownFormat = errors.New("x509keyinfo: unknown output format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatTable, FormatPEM, FormatSSH}
}

// ParseFormat maps a name to a Format. An empty name yields [FormatText].
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Render writes reports to w in the given format.
//
// The pem and ssh formats emit one key per successful report and a comment
// line for every failure.
func Render(w io.Writer, format Format, reports []Report) error {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	var err error
	switch format {
	case FormatText:
		renderText(buf, reports)
	case FormatJSON:
		err = renderJSON(buf, reports)
	case FormatTable:
		err = renderTable(buf, reports)
	case FormatPEM:
		err = renderPEM(buf, reports)
	case FormatSSH:
		err = renderSSH(buf, reports)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func renderText(buf gc.Buffer, reports []Report) {
	for i, r := range reports {
		if i > 0 {
			buf.WriteByte('\n')
		}
		field(buf, "source", r.Source)
		field(buf, "subject", r.Subject)
		if !r.OK() {
			field(buf, "error", r.Error)
			continue
		}
		field(buf, "bits", strconv.Itoa(r.Bits))
		field(buf, "exponent", r.Exponent)
		field(buf, "modulus", r.Modulus)
		field(buf, "keygrip", r.Keygrip)
		field(buf, "scheme", r.Scheme)
		field(buf, "ssh", r.SSHFingerprint)
	}
}

func field(buf gc.Buffer, name, value string) {
	if value == "" {
		return
	}
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteByte('\n')
}

func renderJSON(buf gc.Buffer, reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func renderTable(buf gc.Buffer, reports []Report) error {
	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Source", "Subject", "Bits", "Exponent", "Keygrip", "Status"})

	var rows [][]string
	for _, r := range reports {
		status := "ok"
		bits := ""
		if r.OK() {
			bits = strconv.Itoa(r.Bits)
		} else {
			status = r.Error
		}
		rows = append(rows, []string{r.Source, r.Subject, bits, r.Exponent, r.Keygrip, status})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func renderPEM(buf gc.Buffer, reports []Report) error {
	for _, r := range reports {
		if !r.OK() {
			comment(buf, r)
			continue
		}
		pub, err := r.key.RSA.PublicKey()
		if err != nil {
			failure(buf, r.Source, err.Error())
			continue
		}
		der, err := x509.MarshalPKIXPublicKey(pub)
		if err != nil {
			failure(buf, r.Source, err.Error())
			continue
		}
		buf.Write(x509certs.EncodePEM(x509certs.BlockPublicKey, der))
	}
	return nil
}

func renderSSH(buf gc.Buffer, reports []Report) error {
	for _, r := range reports {
		if !r.OK() {
			comment(buf, r)
			continue
		}
		pub, err := sshPublicKey(r.key)
		if err != nil {
			failure(buf, r.Source, err.Error())
			continue
		}
		line := ssh.MarshalAuthorizedKey(pub)
		// MarshalAuthorizedKey ends with a newline. Insert the keygrip as comment.
		buf.Write(bytes.TrimRight(line, "\n"))
		if r.Keygrip != "" {
			buf.WriteByte(' ')
			buf.WriteString(r.Keygrip)
		}
		buf.WriteByte('\n')
	}
	return nil
}

func comment(buf gc.Buffer, r Report) { failure(buf, r.Source, r.Error) }

// failure writes a "# source: reason" line in place of a key.
func failure(buf gc.Buffer, source, reason string) {
	buf.WriteString("# ")
	buf.WriteString(source)
	buf.WriteString(": ")
	buf.WriteString(reason)
	buf.WriteByte('\n')
}
