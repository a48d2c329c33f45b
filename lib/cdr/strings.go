package cdr

// Strings are null-terminated octet sequences prefixed by a 32-bit length
// field that includes the terminator.

// SerializeString writes s as a CDR string: a 32-bit length (s's byte
// count plus one for the terminator), then the bytes of s, then a zero
// terminator byte. On growth failure the state is rolled back to what it
// was before the length write.
func (c *Codec) SerializeString(s string) error {
	return c.SerializeStringBytes([]byte(s))
}

// SerializeStringBytes is the explicit-length variant: it writes
// len(data)+1 as the length and data followed by a terminator byte,
// letting callers pass raw, possibly non-UTF-8 payloads.
func (c *Codec) SerializeStringBytes(data []byte) error {
	saved := c.GetState()

	length := uint32(len(data)) + 1
	if err := c.SerializeUint32(length); err != nil {
		c.SetState(saved)
		return err
	}

	span := len(data) + 1
	if c.dataCursor+span > c.buf.Len() {
		if !c.buf.Grow(c.dataCursor + span - c.buf.Len()) {
			c.SetState(saved)
			return newInsufficientSpace("grow %d bytes for string payload", span)
		}
	}
	dst := c.buf.Bytes()[c.dataCursor:]
	copy(dst, data)
	dst[len(data)] = 0
	c.dataCursor += span
	c.lastSize = widthInt8
	return nil
}

// SerializeNullString writes the null-pointer-string form: a zero length
// and nothing else.
func (c *Codec) SerializeNullString() error {
	return c.SerializeUint32(0)
}

// SerializeStringOrder is SerializeString with an explicit byte-order
// override for the length prefix; the string payload itself has no
// byte-order-dependent encoding.
func (c *Codec) SerializeStringOrder(s string, order ByteOrder) error {
	return c.withByteOrder(order, func() error { return c.SerializeString(s) })
}

// DeserializeStringOrder is DeserializeString with an explicit byte-order
// override for the length prefix.
func (c *Codec) DeserializeStringOrder(order ByteOrder) (data []byte, charCount int, err error) {
	err = c.withByteOrder(order, func() error {
		data, charCount, err = c.DeserializeString()
		return err
	})
	return
}

// DeserializeString reads a CDR string and returns its raw bytes (the
// length-prefixed region, possibly including a trailing null byte exactly
// as it appeared on the wire) together with the logical character count:
// length-1 if the last byte is a null terminator, else length.
//
// A length of zero yields a nil, empty result. On any failure the state is
// rolled back to what it was before the length read.
func (c *Codec) DeserializeString() (data []byte, charCount int, err error) {
	saved := c.GetState()

	length, err := c.DeserializeUint32()
	if err != nil {
		return nil, 0, err
	}
	if length == 0 {
		c.lastSize = widthInt8
		return nil, 0, nil
	}

	if c.remaining() < int(length) {
		c.SetState(saved)
		return nil, 0, newInsufficientSpace("string needs %d bytes, have %d", length, c.remaining())
	}

	data = make([]byte, length)
	copy(data, c.buf.Bytes()[c.dataCursor:c.dataCursor+int(length)])
	c.dataCursor += int(length)
	c.lastSize = widthInt8

	charCount = int(length)
	if data[len(data)-1] == 0 {
		charCount = int(length) - 1
	}
	return data, charCount, nil
}
