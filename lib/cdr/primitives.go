package cdr

import (
	"encoding/binary"
	"math"
)

// writeSpan writes the alignment padding then w payload bytes at the
// current data cursor, swapping the payload's byte order if c.swap is set,
// and advances the cursor past both.
//
// payload must already be exactly w bytes in the host's native order;
// writeSpan reverses it itself when c.swap says the wire order disagrees
// with the host's.
func (c *Codec) writeSpan(width int, payload []byte) error {
	alignment := alignmentOf(width)
	needed := neededPadding(alignment, c.dataCursor, c.alignAnchor)
	span := needed + width

	if c.dataCursor+span > c.buf.Len() {
		if !c.buf.Grow(c.dataCursor + span - c.buf.Len()) {
			return newInsufficientSpace("grow %d bytes for primitive write", span)
		}
	}

	c.lastSize = width
	c.dataCursor += needed

	dst := c.buf.Bytes()[c.dataCursor : c.dataCursor+width]
	if c.swap {
		for i := 0; i < width; i++ {
			dst[i] = payload[width-1-i]
		}
	} else {
		copy(dst, payload)
	}
	c.dataCursor += width
	return nil
}

// readSpan skips alignment padding then reads w bytes at the current data
// cursor into a host-native-order buffer, reversing them first if c.swap
// says the wire order disagrees with the host's. Deserialize never grows
// the buffer; short input is an error.
func (c *Codec) readSpan(width int) ([]byte, error) {
	alignment := alignmentOf(width)
	needed := neededPadding(alignment, c.dataCursor, c.alignAnchor)
	span := needed + width

	if c.remaining() < span {
		return nil, newInsufficientSpace("need %d bytes, have %d", span, c.remaining())
	}

	c.lastSize = width
	c.dataCursor += needed

	src := c.buf.Bytes()[c.dataCursor : c.dataCursor+width]
	out := make([]byte, width)
	if c.swap {
		for i := 0; i < width; i++ {
			out[i] = src[width-1-i]
		}
	} else {
		copy(out, src)
	}
	c.dataCursor += width
	return out, nil
}

// --- unsigned integers ---

func (c *Codec) SerializeUint8(v uint8) error { return c.writeSpan(widthInt8, []byte{v}) }
func (c *Codec) SerializeUint16(v uint16) error {
	b := make([]byte, widthInt16)
	binary.NativeEndian.PutUint16(b, v)
	return c.writeSpan(widthInt16, b)
}
func (c *Codec) SerializeUint32(v uint32) error {
	b := make([]byte, widthInt32)
	binary.NativeEndian.PutUint32(b, v)
	return c.writeSpan(widthInt32, b)
}
func (c *Codec) SerializeUint64(v uint64) error {
	b := make([]byte, widthInt64)
	binary.NativeEndian.PutUint64(b, v)
	return c.writeSpan(widthInt64, b)
}

func (c *Codec) DeserializeUint8() (uint8, error) {
	b, err := c.readSpan(widthInt8)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
func (c *Codec) DeserializeUint16() (uint16, error) {
	b, err := c.readSpan(widthInt16)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(b), nil
}
func (c *Codec) DeserializeUint32() (uint32, error) {
	b, err := c.readSpan(widthInt32)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(b), nil
}
func (c *Codec) DeserializeUint64() (uint64, error) {
	b, err := c.readSpan(widthInt64)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint64(b), nil
}

// --- signed integers (share the unsigned wire representation) ---

func (c *Codec) SerializeInt8(v int8) error   { return c.SerializeUint8(uint8(v)) }
func (c *Codec) SerializeInt16(v int16) error { return c.SerializeUint16(uint16(v)) }
func (c *Codec) SerializeInt32(v int32) error { return c.SerializeUint32(uint32(v)) }
func (c *Codec) SerializeInt64(v int64) error { return c.SerializeUint64(uint64(v)) }

func (c *Codec) DeserializeInt8() (int8, error) {
	v, err := c.DeserializeUint8()
	return int8(v), err
}
func (c *Codec) DeserializeInt16() (int16, error) {
	v, err := c.DeserializeUint16()
	return int16(v), err
}
func (c *Codec) DeserializeInt32() (int32, error) {
	v, err := c.DeserializeUint32()
	return int32(v), err
}
func (c *Codec) DeserializeInt64() (int64, error) {
	v, err := c.DeserializeUint64()
	return int64(v), err
}

// --- floating point ---

func (c *Codec) SerializeFloat32(v float32) error {
	return c.SerializeUint32(math.Float32bits(v))
}
func (c *Codec) DeserializeFloat32() (float32, error) {
	bits, err := c.DeserializeUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (c *Codec) SerializeFloat64(v float64) error {
	return c.SerializeUint64(math.Float64bits(v))
}
func (c *Codec) DeserializeFloat64() (float64, error) {
	bits, err := c.DeserializeUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// LongDouble is the 16-byte extended-precision payload CDR carries for
// `long double`. This package does not interpret its bits (no host Go type
// has matching precision); it carries the 16 bytes as one unit, reversed
// like any other primitive when the wire order differs from the host's,
// and aligned to 8 like any other 8-or-wider primitive.
type LongDouble [16]byte

func (c *Codec) SerializeLongDouble(v LongDouble) error {
	return c.writeSpan(widthLongDouble, v[:])
}
func (c *Codec) DeserializeLongDouble() (LongDouble, error) {
	var out LongDouble
	b, err := c.readSpan(widthLongDouble)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// --- boolean ---

// SerializeBool writes a single byte, 0 or 1.
func (c *Codec) SerializeBool(v bool) error {
	var b byte
	if v {
		b = 1
	}
	return c.writeSpan(widthBool, []byte{b})
}

// DeserializeBool reads a single byte and raises bad-parameter if it is
// not 0 or 1, leaving the cursor unchanged on that failure.
func (c *Codec) DeserializeBool() (bool, error) {
	saved := c.GetState()
	b, err := c.readSpan(widthBool)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		c.SetState(saved)
		return false, newBadParameter("boolean byte %#x is not 0 or 1", b[0])
	}
}

// --- byte-order override forms ---

func (c *Codec) SerializeUint8Order(v uint8, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint8(v) })
}
func (c *Codec) SerializeUint16Order(v uint16, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint16(v) })
}
func (c *Codec) SerializeUint32Order(v uint32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint32(v) })
}
func (c *Codec) SerializeUint64Order(v uint64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint64(v) })
}
func (c *Codec) SerializeInt8Order(v int8, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt8(v) })
}
func (c *Codec) SerializeInt16Order(v int16, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt16(v) })
}
func (c *Codec) SerializeInt32Order(v int32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt32(v) })
}
func (c *Codec) SerializeInt64Order(v int64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt64(v) })
}
func (c *Codec) SerializeFloat32Order(v float32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeFloat32(v) })
}
func (c *Codec) SerializeFloat64Order(v float64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeFloat64(v) })
}

func (c *Codec) DeserializeUint8Order(order ByteOrder) (v uint8, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeUint8()
		return err
	})
	return
}
func (c *Codec) DeserializeUint16Order(order ByteOrder) (v uint16, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeUint16()
		return err
	})
	return
}
func (c *Codec) DeserializeUint32Order(order ByteOrder) (v uint32, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeUint32()
		return err
	})
	return
}
func (c *Codec) DeserializeUint64Order(order ByteOrder) (v uint64, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeUint64()
		return err
	})
	return
}
func (c *Codec) DeserializeInt8Order(order ByteOrder) (v int8, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeInt8()
		return err
	})
	return
}
func (c *Codec) DeserializeInt16Order(order ByteOrder) (v int16, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeInt16()
		return err
	})
	return
}
func (c *Codec) DeserializeInt32Order(order ByteOrder) (v int32, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeInt32()
		return err
	})
	return
}
func (c *Codec) DeserializeInt64Order(order ByteOrder) (v int64, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeInt64()
		return err
	})
	return
}
func (c *Codec) DeserializeFloat32Order(order ByteOrder) (v float32, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeFloat32()
		return err
	})
	return
}
func (c *Codec) DeserializeFloat64Order(order ByteOrder) (v float64, err error) {
	err = c.withByteOrder(order, func() error {
		v, err = c.DeserializeFloat64()
		return err
	})
	return
}
