// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hexcodec

import (
	"encoding/hex"
	"errors"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
)

// ErrMalformedInput indicates hex text of odd length or with a non-hex character.
var ErrMalformedInput = errors.New("hexcodec: malformed hex input")

// Hex2Bin decodes source, which may mix upper and lower case digits and
// must have even length. The length of the returned slice is the decoded size.
func Hex2Bin(source string) ([]byte, error) {
	if len(source)%2 != 0 {
		return nil, ErrMalformedInput
	}

	target := make([]byte, len(source)/2)
	if _, err := hex.Decode(target, []byte(source)); err != nil {
		return nil, ErrMalformedInput
	}

	return target, nil
}

// Bin2Hex encodes source as lowercase hex without separators.
func Bin2Hex(source []byte) string { return hex.EncodeToString(source) }

// AppendHex writes the lowercase hex form of source into dst.
func AppendHex(dst gc.Buffer, source []byte) {
	var pair [2]byte
	for i := range source {
		hex.Encode(pair[:], source[i:i+1])
		dst.Write(pair[:])
	}
}

// StrAppend replaces *target with *target followed by addition.
// A nil target is ignored.
//
// StrAppend is not safe for concurrent use on the same target.
func StrAppend(target *string, addition string) {
	if target == nil || addition == "" {
		return
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	buf.WriteString(*target)
	buf.WriteString(addition)
	*target = buf.String()
}
