package cdr

import (
	"encoding/binary"

	"github.com/thebagchi/go-cdr/lib/buffer"
)

// hostLittleEndian mirrors the host's native byte order. encoding/binary's
// NativeEndian resolves to BigEndian or LittleEndian at build time per
// GOARCH, so this is a build-time fact rather than a runtime probe.
var hostLittleEndian = binary.NativeEndian.String() == binary.LittleEndian.String()

// State is an opaque snapshot of everything a rollback needs to restore:
// the data cursor, the alignment anchor, the swap flag, and the width of
// the last primitive touched.
type State struct {
	dataCursor  int
	alignAnchor int
	swap        bool
	lastSize    int
}

// Codec is a stateful CDR encoder/decoder over a buffer.Buffer. Its
// cursors are offsets from the buffer's start, so a grow that reallocates
// the backing storage never invalidates them.
type Codec struct {
	buf *buffer.Buffer

	flavor    Flavor
	byteOrder ByteOrder
	swap      bool
	plFlag    PLFlag
	options   uint16

	dataCursor  int
	alignAnchor int
	lastSize    int
}

// New constructs a Codec over buf using the given initial byte order and
// CDR flavor. The Codec never frees buf; the Buffer outlives the Codec.
func New(buf *buffer.Buffer, order ByteOrder, flavor Flavor) *Codec {
	c := &Codec{
		buf:       buf,
		flavor:    flavor,
		byteOrder: order,
	}
	c.swap = c.computeSwap(order)
	return c
}

func (c *Codec) computeSwap(order ByteOrder) bool {
	wantLittle := order == LittleEndian
	return wantLittle != hostLittleEndian
}

// Reset returns both cursors to the buffer's start and recomputes swap
// from the current byte order.
func (c *Codec) Reset() {
	c.dataCursor = 0
	c.alignAnchor = 0
	c.lastSize = 0
	c.swap = c.computeSwap(c.byteOrder)
}

// ResetAlignment sets the alignment anchor to the current data cursor.
// Implicitly invoked by the encapsulation operations. Idempotent: calling
// it twice in succession has the same effect as once.
func (c *Codec) ResetAlignment() {
	c.alignAnchor = c.dataCursor
}

// ChangeByteOrder updates the byte order and, if it actually differs from
// the current one, toggles swap to match.
func (c *Codec) ChangeByteOrder(order ByteOrder) {
	if order == c.byteOrder {
		return
	}
	c.byteOrder = order
	c.swap = !c.swap
}

// ByteOrder returns the codec's current byte order.
func (c *Codec) ByteOrder() ByteOrder { return c.byteOrder }

// Flavor returns the codec's CDR flavor, fixed at construction.
func (c *Codec) Flavor() Flavor { return c.flavor }

// PLFlag returns the current DDS parameter-list flag.
func (c *Codec) PLFlag() PLFlag { return c.plFlag }

// SetPLFlag sets the DDS parameter-list flag directly. Only meaningful
// when Flavor() == FlavorDDS; callers encoding plain CDR should leave it
// at WithoutPL.
func (c *Codec) SetPLFlag(flag PLFlag) { c.plFlag = flag }

// Options returns the 16-bit DDS-CDR options field.
func (c *Codec) Options() uint16 { return c.options }

// SetOptions sets the 16-bit DDS-CDR options field.
func (c *Codec) SetOptions(opts uint16) { c.options = opts }

// LastDataSize returns the width in bytes of the most recently
// serialized/deserialized primitive. Callers implementing XCDR parameter
// lists rely on this to compute per-parameter padding.
func (c *Codec) LastDataSize() int { return c.lastSize }

// GetCurrentPosition returns the current data cursor as an offset from the
// buffer's start.
func (c *Codec) GetCurrentPosition() int { return c.dataCursor }

// GetBufferPointer returns the populated region of the underlying buffer,
// for callers computing section sizes. The slice aliases the Buffer's
// storage and must not be retained across a subsequent write.
func (c *Codec) GetBufferPointer() []byte { return c.buf.Bytes() }

// GetState captures {dataCursor, alignAnchor, swap, lastDataSize} for
// later rollback via SetState.
func (c *Codec) GetState() State {
	return State{
		dataCursor:  c.dataCursor,
		alignAnchor: c.alignAnchor,
		swap:        c.swap,
		lastSize:    c.lastSize,
	}
}

// SetState restores a previously captured State.
func (c *Codec) SetState(s State) {
	c.dataCursor = s.dataCursor
	c.alignAnchor = s.alignAnchor
	c.swap = s.swap
	c.lastSize = s.lastSize
}

// Jump advances the data cursor by n bytes, growing the buffer if needed.
// Returns false if n is negative or the buffer cannot grow to fit.
func (c *Codec) Jump(n int) bool {
	if n < 0 {
		return false
	}
	if !c.ensure(n) {
		return false
	}
	c.dataCursor += n
	return true
}

// MoveAlignmentForward advances the alignment anchor by n bytes, growing
// the buffer if needed. Used by callers emitting PL sub-streams who need
// to realign against a position ahead of the current cursor.
func (c *Codec) MoveAlignmentForward(n int) bool {
	if n < 0 {
		return false
	}
	target := c.alignAnchor + n
	if target > c.buf.Len() {
		if !c.buf.Grow(target - c.buf.Len()) {
			return false
		}
	}
	c.alignAnchor = target
	return true
}

// ensure grows the buffer so that at least extra more bytes are available
// past the current data cursor, when writing. It never shrinks and is
// never called on a read path — reads fail on short input instead.
func (c *Codec) ensure(extra int) bool {
	need := c.dataCursor + extra
	if need <= c.buf.Len() {
		return true
	}
	return c.buf.Grow(need - c.buf.Len())
}

// remaining reports how many populated bytes sit at or past the data
// cursor, for read-side bounds checks.
func (c *Codec) remaining() int {
	return c.buf.Len() - c.dataCursor
}
