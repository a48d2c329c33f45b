package cdr

// Array ops align once, before the first element, using the element's
// width (and the long-double exception), then pack elements back to back
// with no inter-element padding. An empty array is a strict no-op: no
// alignment, no cursor movement.

// SerializeByteArray bulk-copies data with alignment 1 (byte/char arrays).
func (c *Codec) SerializeByteArray(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return c.writeSpan(len(data), data)
}

// DeserializeByteArray reads exactly len(dst) bytes into dst, alignment 1.
func (c *Codec) DeserializeByteArray(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	b, err := c.readSpan(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// SerializeBoolArray writes each element as a normalized single byte with
// no inter-element padding.
func (c *Codec) SerializeBoolArray(data []bool) error {
	if len(data) == 0 {
		return nil
	}
	packed := make([]byte, len(data))
	for i, v := range data {
		if v {
			packed[i] = 1
		}
	}
	return c.writeSpan(len(packed), packed)
}

// DeserializeBoolArray reads len(dst) one-byte booleans, raising
// bad-parameter (and rolling back to the pre-call state) if any byte is
// outside {0, 1}.
func (c *Codec) DeserializeBoolArray(dst []bool) error {
	if len(dst) == 0 {
		return nil
	}
	saved := c.GetState()
	b, err := c.readSpan(len(dst))
	if err != nil {
		return err
	}
	for i, v := range b {
		switch v {
		case 0:
			dst[i] = false
		case 1:
			dst[i] = true
		default:
			c.SetState(saved)
			return newBadParameter("boolean array byte[%d]=%#x is not 0 or 1", i, v)
		}
	}
	return nil
}

// SerializeWCharArray delegates each element to the 32-bit primitive:
// WCDR encodes every wide character as a 32-bit code unit.
func (c *Codec) SerializeWCharArray(data []rune) error {
	if len(data) == 0 {
		return nil
	}
	for _, r := range data {
		if err := c.SerializeUint32(uint32(r)); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeWCharArray is the element-by-element inverse of
// SerializeWCharArray.
func (c *Codec) DeserializeWCharArray(dst []rune) error {
	if len(dst) == 0 {
		return nil
	}
	for i := range dst {
		v, err := c.DeserializeUint32()
		if err != nil {
			return err
		}
		dst[i] = rune(v)
	}
	return nil
}

// SerializeLongDoubleArray aligns once to 8 bytes, then packs each
// element's 16-byte payload contiguously.
func (c *Codec) SerializeLongDoubleArray(data []LongDouble) error {
	if len(data) == 0 {
		return nil
	}
	flat := make([]byte, 0, len(data)*widthLongDouble)
	for _, v := range data {
		flat = append(flat, v[:]...)
	}
	return c.writeLongDoubleSpan(flat, len(data))
}

// writeLongDoubleSpan aligns once to 8 bytes for the whole array, then
// writes the flattened payload without per-element realignment, reversing
// each 16-byte element when c.swap is set, as SerializeLongDouble does.
func (c *Codec) writeLongDoubleSpan(flat []byte, count int) error {
	alignment := alignmentOf(widthLongDouble)
	needed := neededPadding(alignment, c.dataCursor, c.alignAnchor)
	span := needed + len(flat)
	if c.dataCursor+span > c.buf.Len() {
		if !c.buf.Grow(c.dataCursor + span - c.buf.Len()) {
			return newInsufficientSpace("grow %d bytes for long double array", span)
		}
	}
	c.lastSize = widthLongDouble
	c.dataCursor += needed
	dst := c.buf.Bytes()[c.dataCursor : c.dataCursor+len(flat)]
	copy(dst, flat)
	if c.swap {
		for off := 0; off < len(dst); off += widthLongDouble {
			for i, j := off, off+widthLongDouble-1; i < j; i, j = i+1, j-1 {
				dst[i], dst[j] = dst[j], dst[i]
			}
		}
	}
	c.dataCursor += len(flat)
	return nil
}

// DeserializeLongDoubleArray is the inverse of SerializeLongDoubleArray.
func (c *Codec) DeserializeLongDoubleArray(dst []LongDouble) error {
	if len(dst) == 0 {
		return nil
	}
	alignment := alignmentOf(widthLongDouble)
	needed := neededPadding(alignment, c.dataCursor, c.alignAnchor)
	span := needed + len(dst)*widthLongDouble
	if c.remaining() < span {
		return newInsufficientSpace("long double array needs %d bytes, have %d", span, c.remaining())
	}
	c.lastSize = widthLongDouble
	c.dataCursor += needed
	for i := range dst {
		copy(dst[i][:], c.buf.Bytes()[c.dataCursor:c.dataCursor+widthLongDouble])
		if c.swap {
			for a, b := 0, widthLongDouble-1; a < b; a, b = a+1, b-1 {
				dst[i][a], dst[i][b] = dst[i][b], dst[i][a]
			}
		}
		c.dataCursor += widthLongDouble
	}
	return nil
}

// serializeArray and deserializeArray align once for width, then invoke
// encode/decode to pack/unpack each element contiguously with no inter-element
// padding. It backs the uint16/uint32/uint64/int*/float* array forms,
// collapsing what would otherwise be a dozen near-identical functions.
func serializeArray[T any](c *Codec, data []T, width int, encode func(*Codec, T) error) error {
	if len(data) == 0 {
		return nil
	}
	// Align once for the whole array by padding before the first element;
	// subsequent elements ride writeSpan's per-call alignment check, which
	// is already zero once the first element lands on boundary.
	if err := alignOnce(c, width); err != nil {
		return err
	}
	for _, v := range data {
		if err := encode(c, v); err != nil {
			return err
		}
	}
	return nil
}

func deserializeArray[T any](c *Codec, dst []T, width int, decode func(*Codec) (T, error)) error {
	if len(dst) == 0 {
		return nil
	}
	// Reads never grow the buffer: the padding must already be present.
	needed := neededPadding(alignmentOf(width), c.dataCursor, c.alignAnchor)
	if c.remaining() < needed {
		return newInsufficientSpace("array alignment needs %d bytes, have %d", needed, c.remaining())
	}
	c.dataCursor += needed
	for i := range dst {
		v, err := decode(c)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// alignOnce pads the cursor to the given width's alignment without
// consuming a payload, growing the buffer as needed. Used by
// serializeArray so that only the first element pays an alignment check;
// every subsequent same-width element is already on boundary.
func alignOnce(c *Codec, width int) error {
	alignment := alignmentOf(width)
	needed := neededPadding(alignment, c.dataCursor, c.alignAnchor)
	if needed == 0 {
		return nil
	}
	if !c.ensure(needed) {
		return newInsufficientSpace("grow %d bytes for array alignment", needed)
	}
	c.dataCursor += needed
	return nil
}

func (c *Codec) SerializeUint16Array(data []uint16) error {
	return serializeArray(c, data, widthInt16, (*Codec).SerializeUint16)
}
func (c *Codec) DeserializeUint16Array(dst []uint16) error {
	return deserializeArray(c, dst, widthInt16, (*Codec).DeserializeUint16)
}
func (c *Codec) SerializeUint32Array(data []uint32) error {
	return serializeArray(c, data, widthInt32, (*Codec).SerializeUint32)
}
func (c *Codec) DeserializeUint32Array(dst []uint32) error {
	return deserializeArray(c, dst, widthInt32, (*Codec).DeserializeUint32)
}
func (c *Codec) SerializeUint64Array(data []uint64) error {
	return serializeArray(c, data, widthInt64, (*Codec).SerializeUint64)
}
func (c *Codec) DeserializeUint64Array(dst []uint64) error {
	return deserializeArray(c, dst, widthInt64, (*Codec).DeserializeUint64)
}
func (c *Codec) SerializeInt16Array(data []int16) error {
	return serializeArray(c, data, widthInt16, (*Codec).SerializeInt16)
}
func (c *Codec) DeserializeInt16Array(dst []int16) error {
	return deserializeArray(c, dst, widthInt16, (*Codec).DeserializeInt16)
}
func (c *Codec) SerializeInt32Array(data []int32) error {
	return serializeArray(c, data, widthInt32, (*Codec).SerializeInt32)
}
func (c *Codec) DeserializeInt32Array(dst []int32) error {
	return deserializeArray(c, dst, widthInt32, (*Codec).DeserializeInt32)
}
func (c *Codec) SerializeInt64Array(data []int64) error {
	return serializeArray(c, data, widthInt64, (*Codec).SerializeInt64)
}
func (c *Codec) DeserializeInt64Array(dst []int64) error {
	return deserializeArray(c, dst, widthInt64, (*Codec).DeserializeInt64)
}
func (c *Codec) SerializeFloat32Array(data []float32) error {
	return serializeArray(c, data, widthFloat32, (*Codec).SerializeFloat32)
}
func (c *Codec) DeserializeFloat32Array(dst []float32) error {
	return deserializeArray(c, dst, widthFloat32, (*Codec).DeserializeFloat32)
}
func (c *Codec) SerializeFloat64Array(data []float64) error {
	return serializeArray(c, data, widthFloat64, (*Codec).SerializeFloat64)
}
func (c *Codec) DeserializeFloat64Array(dst []float64) error {
	return deserializeArray(c, dst, widthFloat64, (*Codec).DeserializeFloat64)
}

// --- byte-order override forms ---
//
// Each wraps the default-order array op in a single withByteOrder call so
// every element shares one swap decision and one restore on exit, rather
// than paying the save/restore cost per element.

func (c *Codec) SerializeUint16ArrayOrder(data []uint16, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint16Array(data) })
}
func (c *Codec) DeserializeUint16ArrayOrder(dst []uint16, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeUint16Array(dst) })
}
func (c *Codec) SerializeUint32ArrayOrder(data []uint32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint32Array(data) })
}
func (c *Codec) DeserializeUint32ArrayOrder(dst []uint32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeUint32Array(dst) })
}
func (c *Codec) SerializeUint64ArrayOrder(data []uint64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeUint64Array(data) })
}
func (c *Codec) DeserializeUint64ArrayOrder(dst []uint64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeUint64Array(dst) })
}
func (c *Codec) SerializeInt16ArrayOrder(data []int16, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt16Array(data) })
}
func (c *Codec) DeserializeInt16ArrayOrder(dst []int16, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeInt16Array(dst) })
}
func (c *Codec) SerializeInt32ArrayOrder(data []int32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt32Array(data) })
}
func (c *Codec) DeserializeInt32ArrayOrder(dst []int32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeInt32Array(dst) })
}
func (c *Codec) SerializeInt64ArrayOrder(data []int64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeInt64Array(data) })
}
func (c *Codec) DeserializeInt64ArrayOrder(dst []int64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeInt64Array(dst) })
}
func (c *Codec) SerializeFloat32ArrayOrder(data []float32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeFloat32Array(data) })
}
func (c *Codec) DeserializeFloat32ArrayOrder(dst []float32, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeFloat32Array(dst) })
}
func (c *Codec) SerializeFloat64ArrayOrder(data []float64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeFloat64Array(data) })
}
func (c *Codec) DeserializeFloat64ArrayOrder(dst []float64, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.DeserializeFloat64Array(dst) })
}
