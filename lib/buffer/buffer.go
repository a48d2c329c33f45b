// Package buffer provides a growable byte region for the CDR codec.
//
// # Overview
//
// Buffer owns a contiguous []byte and exposes only what a codec needs to
// grow, read, and write it: a capacity, a grow operation, and raw access to
// the backing storage. It never interprets the bytes it holds.
//
// # Dependencies
//
// Standard library only: slices, for efficient exponential growth.
//
// # Thread Safety
//
// Buffer is NOT thread-safe. A single Codec owns a Buffer for its lifetime;
// callers needing concurrent access must synchronize externally.
package buffer

import "slices"

// InitialCapacity is the capacity a new Buffer starts with when none is
// requested explicitly.
var InitialCapacity = 64

// Buffer is a growable byte region. Cursors into it are kept by callers
// (the Codec) as offsets from zero rather than pointers, so that a grow
// which reallocates the backing array never invalidates them.
//
// maxCapacity, when positive, bounds how far Grow will ever extend the
// buffer; a request that would exceed it fails rather than allocating.
// Zero means unbounded.
type Buffer struct {
	data        []byte
	maxCapacity int
}

// New creates an empty, unbounded Buffer with the given initial capacity.
// A non-positive capacity falls back to InitialCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = InitialCapacity
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// NewFromBytes wraps existing data for reading. The Buffer never grows a
// wrapped slice beyond its original length implicitly; Grow still works,
// extending into the slice's spare capacity while there is any and
// reallocating only once that is exhausted.
func NewFromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBounded creates an empty Buffer like New, but Grow refuses any
// request that would push the populated length past maxCapacity. Used to
// model an allocator with a real memory budget.
func NewBounded(capacity, maxCapacity int) *Buffer {
	b := New(capacity)
	b.maxCapacity = maxCapacity
	return b
}

// Len returns the number of bytes currently populated in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Capacity returns the number of bytes the buffer can hold before it must
// reallocate.
func (b *Buffer) Capacity() int {
	return cap(b.data)
}

// Bytes returns the populated region of the buffer. The returned slice
// aliases the Buffer's storage; callers must not retain it across a Grow.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Grow attempts to expand the populated length by at least minExtra bytes,
// using an exponential allocation strategy (double capacity, or the
// requested size if larger) so that a long run of small grows is amortized
// O(1) per call. Returns false if minExtra is negative or if the Buffer
// was created with NewBounded and the populated length plus minExtra would
// exceed its maxCapacity.
//
// Grown bytes are zero-valued. On success len(b.data) increases by exactly
// minExtra; callers compute the span they actually wrote within that.
func (b *Buffer) Grow(minExtra int) bool {
	if minExtra < 0 {
		return false
	}
	if minExtra == 0 {
		return true
	}
	need := len(b.data) + minExtra
	if b.maxCapacity > 0 && need > b.maxCapacity {
		return false
	}
	if cap(b.data) < need {
		target := max(cap(b.data)*2, need)
		b.data = slices.Grow(b.data, target-len(b.data))
	}
	b.data = b.data[:need]
	return true
}

// Truncate resets the populated length to n without releasing capacity.
// Used by Pool.Get.
func (b *Buffer) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.data) {
		n = len(b.data)
	}
	b.data = b.data[:n]
}
