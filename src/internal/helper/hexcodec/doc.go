// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package hexcodec converts between raw bytes and lowercase hexadecimal text.
// It is the codec used by the key extractor for hex intermediates and by the
// keygrip code for its printable form, plus a small string append helper used
// when composing output from pieces.
package hexcodec
