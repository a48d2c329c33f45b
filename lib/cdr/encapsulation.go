package cdr

// Encapsulation header layout:
//
//	offset 0: 0x00                (DDS-CDR only)
//	offset 1 (DDS-CDR) / 0 (plain CDR): encapsulation_kind
//	  bit 0: endianness (0 = big, 1 = little)
//	  bit 1: PL flag (DDS-CDR only)
//	offset 2-3 (DDS-CDR only): options, in the stream's byte order

const (
	kindBitLittleEndian = 1 << 0
	kindBitPL           = 1 << 1
)

// SerializeEncapsulation writes the 4-byte (DDS-CDR) or 1-byte (plain
// CDR... see note) encapsulation header and resets the alignment anchor
// to the position immediately after it. Any failure restores the pre-call
// state.
//
// Plain CDR's header is just the encapsulation_kind byte; DDS-CDR's adds
// the leading reserved byte and trailing 16-bit options, for 4 bytes
// total.
func (c *Codec) SerializeEncapsulation() error {
	saved := c.GetState()

	if c.flavor == FlavorDDS {
		if err := c.SerializeUint8(0x00); err != nil {
			c.SetState(saved)
			return err
		}
	}

	kind := byte(0)
	if c.byteOrder == LittleEndian {
		kind |= kindBitLittleEndian
	}
	if c.plFlag == WithPL {
		kind |= kindBitPL
	}
	if err := c.SerializeUint8(kind); err != nil {
		c.SetState(saved)
		return err
	}

	if c.flavor == FlavorDDS {
		if err := c.SerializeUint16(c.options); err != nil {
			c.SetState(saved)
			return err
		}
	}

	c.ResetAlignment()
	return nil
}

// ReadEncapsulation reads the header written by SerializeEncapsulation,
// adopts the stream's declared byte order (toggling swap if it disagrees
// with the codec's current byte order), adopts the PL flag when DDS-CDR
// allows it, and resets the alignment anchor.
//
// The pre-call snapshot stays live across the whole sequence, including
// the PL-bit rejection under plain CDR, so a bad-parameter failure there
// still restores swap/byte_order/pl_flag/options to what they were before
// this call even though an earlier step already mutated them. State only
// covers the cursor fields, so byteOrder/plFlag/options are snapshotted
// and restored separately here.
func (c *Codec) ReadEncapsulation() error {
	saved := c.GetState()
	savedByteOrder := c.byteOrder
	savedPLFlag := c.plFlag
	savedOptions := c.options
	restore := func() {
		c.SetState(saved)
		c.byteOrder = savedByteOrder
		c.plFlag = savedPLFlag
		c.options = savedOptions
	}

	if c.flavor == FlavorDDS {
		if _, err := c.DeserializeUint8(); err != nil { // reserved byte
			restore()
			return err
		}
	}

	kind, err := c.DeserializeUint8()
	if err != nil {
		restore()
		return err
	}

	streamLittle := kind&kindBitLittleEndian != 0
	streamOrder := BigEndian
	if streamLittle {
		streamOrder = LittleEndian
	}
	if streamOrder != c.byteOrder {
		c.ChangeByteOrder(streamOrder)
	}

	if kind&kindBitPL != 0 {
		if c.flavor != FlavorDDS {
			restore()
			return newBadParameter("PL bit set in encapsulation_kind under plain CDR")
		}
		c.plFlag = WithPL
	} else {
		c.plFlag = WithoutPL
	}

	if c.flavor == FlavorDDS {
		opts, err := c.DeserializeUint16()
		if err != nil {
			restore()
			return err
		}
		c.options = opts
	}

	c.ResetAlignment()
	return nil
}
