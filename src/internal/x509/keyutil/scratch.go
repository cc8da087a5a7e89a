// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keyutil

import (
	"fmt"
	"math/big"

	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
)

// Scratch owns the intermediates of a single extraction. Every buffer it hands
// out goes back to the pool on [Scratch.Release], which runs exactly once no
// matter how often it is called.
//
// A Scratch is not safe for concurrent use and must not outlive the call that
// created it.
type Scratch struct {
	pool     gc.Pool
	held     []gc.Buffer
	modulus  gc.Buffer
	exponent gc.Buffer
	released bool
}

func newScratch(pool gc.Pool) *Scratch {
	return &Scratch{pool: pool, held: make([]gc.Buffer, 0, 4)}
}

// Acquire borrows a buffer that is released together with the scratch.
func (s *Scratch) Acquire() (gc.Buffer, error) {
	if s.released {
		return nil, fmt.Errorf("%w: scratch already released", ErrOutOfMemory)
	}

	b := s.pool.Get()
	if b == nil {
		return nil, ErrOutOfMemory
	}

	s.held = append(s.held, b)
	return b, nil
}

// SetModulus stores the unsigned big-endian modulus. Leading zero bytes are dropped.
func (s *Scratch) SetModulus(raw []byte) error { return s.store(&s.modulus, raw) }

// SetExponent stores the unsigned big-endian public exponent. Leading zero bytes are dropped.
func (s *Scratch) SetExponent(raw []byte) error { return s.store(&s.exponent, raw) }

func (s *Scratch) store(dst *gc.Buffer, raw []byte) error {
	if *dst == nil {
		b, err := s.Acquire()
		if err != nil {
			return err
		}
		*dst = b
	}

	(*dst).Reset()
	(*dst).Write(trimLeadingZeros(raw))
	return nil
}

// integer decodes a stored component. The result never aliases pooled memory.
func (s *Scratch) integer(b gc.Buffer, name string) (*big.Int, error) {
	if b == nil || b.Len() == 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrBadKey, name)
	}
	return new(big.Int).SetBytes(b.Bytes()), nil
}

// Release returns every borrowed buffer to the pool. Calling it again is a no-op.
func (s *Scratch) Release() {
	if s.released {
		return
	}
	s.released = true

	for i, b := range s.held {
		s.pool.Put(b)
		s.held[i] = nil
	}
	s.held = nil
	s.modulus = nil
	s.exponent = nil
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}
