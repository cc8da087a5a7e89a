// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put resets b and returns it to the pool. Buffers that did not come
// from bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		buf.Reset()
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used for scratch memory during key
// extraction, keygrip hashing and report rendering.
//
// Typical usage guarantees the buffer goes back even on early returns:
//
//	buf := gc.Default.Get()
//	defer gc.Default.Put(buf)
//
//	if _, err := buf.Write(der); err != nil {
//		return err
//	}
//
// Contents of a buffer must not be retained after Put. Copy them out first.
var Default Pool = New()

// New returns a fresh pool backed by [bytebufferpool.Pool].
func New() Pool { return &pool{p: &bytebufferpool.Pool{}} }

// TrackedPool wraps another Pool and counts buffers handed out and returned.
// It is used to verify that every acquired buffer is released exactly once.
//
// TrackedPool is safe for concurrent use by multiple goroutines.
type TrackedPool struct {
	inner Pool
	gets  atomic.Int64
	puts  atomic.Int64
}

// NewTrackedPool wraps inner. A nil inner uses a fresh default pool.
func NewTrackedPool(inner Pool) *TrackedPool {
	if inner == nil {
		inner = New()
	}
	return &TrackedPool{inner: inner}
}

// Get returns a buffer from the wrapped pool and counts it.
func (t *TrackedPool) Get() Buffer {
	b := t.inner.Get()
	if b != nil {
		t.gets.Add(1)
	}
	return b
}

// Put returns b to the wrapped pool and counts it. Nil buffers are ignored.
func (t *TrackedPool) Put(b Buffer) {
	if b == nil {
		return
	}
	t.puts.Add(1)
	t.inner.Put(b)
}

// Gets reports how many buffers have been handed out.
func (t *TrackedPool) Gets() int64 { return t.gets.Load() }

// Puts reports how many buffers have been returned.
func (t *TrackedPool) Puts() int64 { return t.puts.Load() }

// Outstanding reports buffers handed out but not yet returned. A negative
// value means some buffer was returned more than once.
func (t *TrackedPool) Outstanding() int64 { return t.gets.Load() - t.puts.Load() }
