package cdr

// A sequence is a 32-bit length followed by length elements using the
// array rules.

// SerializeBoolSequence writes the length prefix then the elements,
// rolling back to the pre-call state if anything after the length write
// fails.
func (c *Codec) SerializeBoolSequence(data []bool) error {
	saved := c.GetState()
	if err := c.SerializeUint32(uint32(len(data))); err != nil {
		c.SetState(saved)
		return err
	}
	if err := c.SerializeBoolArray(data); err != nil {
		c.SetState(saved)
		return err
	}
	return nil
}

// DeserializeBoolSequence reads the length prefix then that many bool
// elements, rolling back on any failure.
func (c *Codec) DeserializeBoolSequence() ([]bool, error) {
	saved := c.GetState()
	n, err := c.DeserializeUint32()
	if err != nil {
		return nil, err
	}
	out := make([]bool, n)
	if err := c.DeserializeBoolArray(out); err != nil {
		c.SetState(saved)
		return nil, err
	}
	return out, nil
}

// SerializeStringSequence writes the length prefix then each string in
// turn, rolling back to the pre-call state on any failure.
func (c *Codec) SerializeStringSequence(data []string) error {
	saved := c.GetState()
	if err := c.SerializeUint32(uint32(len(data))); err != nil {
		c.SetState(saved)
		return err
	}
	for _, s := range data {
		if err := c.SerializeString(s); err != nil {
			c.SetState(saved)
			return err
		}
	}
	return nil
}

// DeserializeStringSequence reads the length prefix, then delegates to
// string deserialize length times. On failure partway through, the
// already-built slots are discarded before the state is restored.
func (c *Codec) DeserializeStringSequence() ([]string, error) {
	saved := c.GetState()
	n, err := c.DeserializeUint32()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		data, charCount, err := c.DeserializeString()
		if err != nil {
			out = nil
			c.SetState(saved)
			return nil, err
		}
		if data == nil {
			out = append(out, "")
			continue
		}
		out = append(out, string(data[:charCount]))
	}
	return out, nil
}
