// Package cdr implements Common Data Representation (CDR), the binary wire
// encoding used by OMG DDS / RTPS, as a single stateful Codec over a
// lib/buffer.Buffer.
//
// # Overview
//
// A Codec tracks a data cursor and an alignment anchor and exposes
// serialize/deserialize operations per primitive, array, string, and
// sequence form. Alignment is always measured relative to the anchor, which
// is the start of the buffer until an encapsulation header resets it.
//
// # Dependencies
//
//   - lib/buffer: the underlying growable byte region
//   - github.com/pkg/errors: stack-traced, tagged error wrapping
//
// # Scope
//
// No I/O, no schema description, no type registry, no IDL parsing, and no
// XCDR2 — only classic CDR plus the DDS-CDR parameter-list flag bit.
//
// # Thread Safety
//
// Codec is NOT thread-safe; it holds mutable cursor state. Use one Codec
// per goroutine, or synchronize externally.
package cdr

// Flavor selects between plain CDR and DDS-CDR encapsulation semantics.
type Flavor int

const (
	// FlavorPlain is classic CDR: no reserved byte, no PL bit, no options.
	FlavorPlain Flavor = iota
	// FlavorDDS is DDS-CDR: a reserved byte, a PL bit, and a 16-bit
	// options field in the encapsulation header.
	FlavorDDS
)

// ByteOrder selects the wire byte order of multi-byte primitives.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// PLFlag is the DDS-CDR parameter-list bit. Only meaningful when the
// Codec's Flavor is FlavorDDS.
type PLFlag int

const (
	WithoutPL PLFlag = iota
	WithPL
)

// widths of the primitives the codec knows how to align and pack. The
// long double's width (16) intentionally differs from its alignment (8);
// see alignmentOf.
const (
	widthInt8       = 1
	widthInt16      = 2
	widthInt32      = 4
	widthInt64      = 8
	widthFloat32    = 4
	widthFloat64    = 8
	widthLongDouble = 16
	widthBool       = 1
	widthLengthHdr  = 4 // 32-bit length prefix used by strings/sequences
)

// alignmentOf returns the alignment CDR requires for a primitive of the
// given width. Every width aligns to itself except long double, which
// carries a 16-byte payload but only an 8-byte alignment requirement.
func alignmentOf(width int) int {
	if width == widthLongDouble {
		return widthInt64
	}
	return width
}
