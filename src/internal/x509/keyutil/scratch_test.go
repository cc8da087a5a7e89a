// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"testing"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratch_Release(t *testing.T) {
	pool := gc.NewTrackedPool(nil)
	s := newScratch(pool)

	require.NoError(t, s.SetModulus([]byte{0x00, 0x00, 0xc5}))
	require.NoError(t, s.SetExponent([]byte{0x03}))
	_, err := s.Acquire()
	require.NoError(t, err)
	assert.Equal(t, int64(3), pool.Outstanding())

	n, err := s.integer(s.modulus, "modulus")
	require.NoError(t, err)
	assert.Equal(t, int64(0xc5), n.Int64(), "leading zeros must be trimmed")

	s.Release()
	s.Release()
	assert.Zero(t, pool.Outstanding(), "Release must return every buffer exactly once")

	_, err = s.Acquire()
	assert.ErrorIs(t, err, ErrOutOfMemory, "Acquire after Release")
	assert.ErrorIs(t, s.SetModulus([]byte{0x01}), ErrOutOfMemory)
}

func TestScratch_Overwrite(t *testing.T) {
	pool := gc.NewTrackedPool(nil)
	s := newScratch(pool)
	defer s.Release()

	require.NoError(t, s.SetExponent([]byte{0x03}))
	require.NoError(t, s.SetExponent([]byte{0x01, 0x00, 0x01}))
	assert.Equal(t, int64(1), pool.Outstanding(), "overwriting reuses the buffer")

	e, err := s.integer(s.exponent, "exponent")
	require.NoError(t, err)
	assert.Equal(t, int64(65537), e.Int64())
}

func TestScratch_MissingComponents(t *testing.T) {
	s := newScratch(gc.New())
	defer s.Release()

	_, err := s.integer(s.modulus, "modulus")
	assert.ErrorIs(t, err, ErrBadKey)

	require.NoError(t, s.SetModulus([]byte{0x00}))
	_, err = s.integer(s.modulus, "modulus")
	assert.ErrorIs(t, err, ErrBadKey, "all zero modulus trims to nothing")
}
