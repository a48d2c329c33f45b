package cdr

// neededPadding computes the number of padding bytes required before the
// next primitive of the given alignment can be written:
//
//	needed = (-(data_cursor - align_anchor)) mod w
func neededPadding(alignment, dataCursor, alignAnchor int) int {
	if alignment <= 1 {
		return 0
	}
	offset := dataCursor - alignAnchor
	rem := offset % alignment
	if rem == 0 {
		return 0
	}
	return alignment - rem
}

// withByteOrder runs fn with swap temporarily recomputed for the given
// explicit byte order, restoring the codec's real swap on every exit path.
// It never touches byteOrder, plFlag, options, or the alignment anchor —
// only swap moves, and only for the duration of fn.
func (c *Codec) withByteOrder(order ByteOrder, fn func() error) error {
	saved := c.swap
	c.swap = computeOverrideSwap(order)
	defer func() { c.swap = saved }()
	return fn()
}

// computeOverrideSwap reports whether the argument's byte order differs
// from the host's, independent of the codec's prior swap state.
func computeOverrideSwap(order ByteOrder) bool {
	wantLittle := order == LittleEndian
	return wantLittle != hostLittleEndian
}
