package buffer

import "sync"

// Pool recycles Buffers sized for one CDR message at a time, avoiding a
// fresh allocation per encode/decode call on a hot path (a DDS participant
// serializing many small samples, for instance).
//
// Modeled on the tiered pool a storage-protocol codebase typically carries
// for exactly this reason: pool.Get/Put around a short-lived buffer use.
type Pool struct {
	pool     sync.Pool
	capacity int
}

// NewPool creates a Pool whose Buffers start at the given capacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = InitialCapacity
	}
	p := &Pool{capacity: capacity}
	p.pool.New = func() any {
		return New(p.capacity)
	}
	return p
}

// Get returns a Buffer with its populated length reset to zero. The
// returned Buffer may have leftover capacity from a previous use.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Truncate(0)
	return b
}

// Put returns a Buffer to the pool for reuse. Callers must not touch the
// Buffer again after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
