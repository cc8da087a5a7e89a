// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hexcodec_test

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/hexcodec"
)

func TestHex2Bin(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		err      error
	}{
		{name: "Empty", input: "", expected: []byte{}},
		{name: "Lowercase", input: "00ff10", expected: []byte{0x00, 0xff, 0x10}},
		{name: "Uppercase", input: "DEADBEEF", expected: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "Mixed case", input: "aBcD", expected: []byte{0xab, 0xcd}},
		{name: "Exponent 65537", input: "010001", expected: []byte{0x01, 0x00, 0x01}},
		{name: "Odd length", input: "abc", err: hexcodec.ErrMalformedInput},
		{name: "Single digit", input: "1", err: hexcodec.ErrMalformedInput},
		{name: "Non-hex character", input: "1g", err: hexcodec.ErrMalformedInput},
		{name: "Separator", input: "00:11", err: hexcodec.ErrMalformedInput},
		{name: "Whitespace", input: "00 1", err: hexcodec.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hexcodec.Hex2Bin(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, got, "no output on failure")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, len(tt.input)/2, "result length")
		})
	}
}

func TestBin2Hex(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "Nil", input: nil, expected: ""},
		{name: "Zero byte", input: []byte{0x00}, expected: "00"},
		{name: "High bits", input: []byte{0xab, 0xcd, 0xef}, expected: "abcdef"},
		{name: "Keygrip sized", input: make([]byte, 20), expected: strings.Repeat("00", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hexcodec.Bin2Hex(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, 2*len(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("Bytes to hex and back", func(t *testing.T) {
		for _, size := range []int{0, 1, 3, 20, 256, 513} {
			b := make([]byte, size)
			_, err := rand.Read(b)
			require.NoError(t, err)

			decoded, err := hexcodec.Hex2Bin(hexcodec.Bin2Hex(b))
			require.NoError(t, err)
			assert.Equal(t, b, decoded, "size %d", size)
		}
	})

	t.Run("Hex normalizes to lowercase", func(t *testing.T) {
		for _, h := range []string{"ABCDEF", "00Ff", "0a0B0c", "FFFFFFFFFFFFFFFF"} {
			b, err := hexcodec.Hex2Bin(h)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(h), hexcodec.Bin2Hex(b))
		}
	})
}

func TestAppendHex(t *testing.T) {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	buf.WriteString("n=")
	hexcodec.AppendHex(buf, []byte{0x00, 0xc0, 0xff, 0xee})

	assert.Equal(t, "n=00c0ffee", buf.String())
}

func TestStrAppend(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		addition []string
		expected string
	}{
		{name: "Append to empty", initial: "", addition: []string{"keygrip"}, expected: "keygrip"},
		{name: "Append empty", initial: "abc", addition: []string{""}, expected: "abc"},
		{name: "Repeated growth", initial: "a", addition: []string{"b", "c", strings.Repeat("d", 4096)}, expected: "abc" + strings.Repeat("d", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.initial
			for _, a := range tt.addition {
				hexcodec.StrAppend(&s, a)
			}
			assert.Equal(t, tt.expected, s)
		})
	}

	t.Run("Nil target", func(t *testing.T) {
		assert.NotPanics(t, func() { hexcodec.StrAppend(nil, "x") })
	})

	t.Run("Previous value is not aliased", func(t *testing.T) {
		s := "first"
		prev := s
		hexcodec.StrAppend(&s, "-second")
		hexcodec.StrAppend(&s, "-third")
		assert.Equal(t, "first", prev)
		assert.Equal(t, "first-second-third", s)
	})
}
