package cdr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/go-cdr/lib/buffer"
	"github.com/thebagchi/go-cdr/lib/cdr"
)

func newCodec(flavor cdr.Flavor, order cdr.ByteOrder) *cdr.Codec {
	return cdr.New(buffer.New(16), order, flavor)
}

func TestSerializeInt32LittleEndianAtOffsetZero(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	require.NoError(t, c.SerializeInt32(0x0A0B0C0D))
	assert.Equal(t, []byte{0x0D, 0x0C, 0x0B, 0x0A}, c.GetBufferPointer())
	assert.Equal(t, 4, c.GetCurrentPosition())
	assert.Equal(t, 4, c.LastDataSize())
}

// int8 then int32 should leave 3 padding bytes so the int32 lands 4-aligned.
func TestSerializeInt8ThenInt32InsertsAlignmentPadding(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.BigEndian)
	require.NoError(t, c.SerializeInt8(0x11))
	require.NoError(t, c.SerializeInt32(0x22334455))
	assert.Equal(t, []byte{0x11, 0x00, 0x00, 0x00, 0x22, 0x33, 0x44, 0x55}, c.GetBufferPointer())
}

func TestDDSEncapsulationWithPLThenInt16(t *testing.T) {
	c := newCodec(cdr.FlavorDDS, cdr.LittleEndian)
	c.SetPLFlag(cdr.WithPL)
	c.SetOptions(0xBEEF)
	require.NoError(t, c.SerializeEncapsulation())
	require.NoError(t, c.SerializeInt16(0x1234))
	assert.Equal(t, []byte{0x00, 0x03, 0xEF, 0xBE, 0x34, 0x12}, c.GetBufferPointer())
}

func TestStringRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	require.NoError(t, c.SerializeString("hi"))
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x68, 0x69, 0x00}, c.GetBufferPointer())

	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	data, charCount, err := r.DeserializeString()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x68, 0x69, 0x00}, data)
	assert.Equal(t, 2, charCount)
}

func TestDeserializeBoolRejectsNonBinaryByte(t *testing.T) {
	raw := []byte{0x02}
	c := cdr.New(buffer.NewFromBytes(raw), cdr.LittleEndian, cdr.FlavorPlain)
	before := c.GetState()
	_, err := c.DeserializeBool()
	require.Error(t, err)
	var cerr *cdr.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cdr.KindBadParameter, cerr.Kind)
	assert.Equal(t, before, c.GetState())
}

// Serializing 8 bytes into a buffer bounded at 4 bytes with no room to
// grow must raise insufficient-space and leave cursor/anchor/swap/
// last_data_size all unchanged.
func TestSerializeFailsWhenBufferCannotGrowPastCap(t *testing.T) {
	buf := buffer.NewBounded(4, 4)
	c := cdr.New(buf, cdr.LittleEndian, cdr.FlavorPlain)
	before := c.GetState()

	err := c.SerializeInt64(1)
	require.Error(t, err)
	var cerr *cdr.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cdr.KindInsufficientSpace, cerr.Kind)
	assert.Equal(t, before, c.GetState())
}

// Jump with a negative count is rejected without touching state.
func TestJumpRejectsNegative(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	before := c.GetState()
	assert.False(t, c.Jump(-1))
	assert.Equal(t, before, c.GetState())
}

// An explicit per-call byte-order override produces wire bytes in that
// order while leaving the codec's own byte order unchanged.
func TestSerializeWithByteOrderOverrideLeavesCodecOrderUnchanged(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	beforeOrder := c.ByteOrder()
	require.NoError(t, c.SerializeInt16Order(0x1234, cdr.BigEndian))
	assert.Equal(t, []byte{0x12, 0x34}, c.GetBufferPointer())
	assert.Equal(t, beforeOrder, c.ByteOrder())
}

func TestEmptyArrayIsNoOp(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	before := c.GetState()
	require.NoError(t, c.SerializeUint32Array(nil))
	assert.Equal(t, before, c.GetState())
	require.NoError(t, c.DeserializeUint32Array(nil))
	assert.Equal(t, before, c.GetState())
}

func TestResetAlignmentIdempotent(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	require.NoError(t, c.SerializeInt8(1))
	c.ResetAlignment()
	once := c.GetState()
	c.ResetAlignment()
	assert.Equal(t, once, c.GetState())
}

func TestEncapsulationRoundTrip(t *testing.T) {
	w := newCodec(cdr.FlavorDDS, cdr.BigEndian)
	w.SetOptions(0x1234)
	require.NoError(t, w.SerializeEncapsulation())
	require.NoError(t, w.SerializeUint32(42))
	require.NoError(t, w.SerializeString("abc"))

	r := cdr.New(buffer.NewFromBytes(w.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorDDS)
	require.NoError(t, r.ReadEncapsulation())
	assert.Equal(t, cdr.BigEndian, r.ByteOrder())
	assert.Equal(t, uint16(0x1234), r.Options())

	v, err := r.DeserializeUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	data, charCount, err := r.DeserializeString()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data[:charCount]))
}

func TestReadEncapsulationRejectsPLUnderPlainCDR(t *testing.T) {
	// Hand-build a plain-CDR header with the PL bit set (bit 1) and the
	// endianness bit (bit 0 = 0, big-endian) disagreeing with the codec's
	// own little-endian setting, so ChangeByteOrder fires before the
	// PL-bit rejection — exercising the byteOrder/swap restore path.
	raw := []byte{0x02}
	c := cdr.New(buffer.NewFromBytes(raw), cdr.LittleEndian, cdr.FlavorPlain)
	before := c.GetState()
	beforeOrder := c.ByteOrder()
	err := c.ReadEncapsulation()
	require.Error(t, err)
	var cerr *cdr.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cdr.KindBadParameter, cerr.Kind)
	assert.Equal(t, before, c.GetState())
	assert.Equal(t, beforeOrder, c.ByteOrder())
}

func TestRoundTripPrimitivesAllByteOrders(t *testing.T) {
	for _, order := range []cdr.ByteOrder{cdr.BigEndian, cdr.LittleEndian} {
		c := newCodec(cdr.FlavorPlain, order)
		require.NoError(t, c.SerializeInt32(-123456))
		require.NoError(t, c.SerializeFloat64(3.14159))
		require.NoError(t, c.SerializeBool(true))

		r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), order, cdr.FlavorPlain)
		i, err := r.DeserializeInt32()
		require.NoError(t, err)
		assert.Equal(t, int32(-123456), i)

		f, err := r.DeserializeFloat64()
		require.NoError(t, err)
		assert.Equal(t, 3.14159, f)

		b, err := r.DeserializeBool()
		require.NoError(t, err)
		assert.True(t, b)
	}
}

func TestBoolSequenceRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	in := []bool{true, false, true, true}
	require.NoError(t, c.SerializeBoolSequence(in))

	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	out, err := r.DeserializeBoolSequence()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStringSequenceRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	in := []string{"alpha", "", "beta gamma"}
	require.NoError(t, c.SerializeStringSequence(in))

	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	out, err := r.DeserializeStringSequence()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGetSetState(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	require.NoError(t, c.SerializeInt8(1))
	s := c.GetState()
	require.NoError(t, c.SerializeInt32(2))
	c.SetState(s)
	assert.Equal(t, 1, c.GetCurrentPosition())
}

func TestStringByteOrderOverrideRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	beforeOrder := c.ByteOrder()
	require.NoError(t, c.SerializeStringOrder("hi", cdr.BigEndian))
	assert.Equal(t, beforeOrder, c.ByteOrder())
	// Length prefix (0x00000003) lands big-endian; payload is untouched.
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x03, 0x68, 0x69, 0x00}, c.GetBufferPointer())

	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	data, charCount, err := r.DeserializeStringOrder(cdr.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x68, 0x69, 0x00}, data)
	assert.Equal(t, 2, charCount)
}

func TestUint32ArrayByteOrderOverrideRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	in := []uint32{0x01020304, 0x05060708}
	require.NoError(t, c.SerializeUint32ArrayOrder(in, cdr.BigEndian))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, c.GetBufferPointer())

	out := make([]uint32, len(in))
	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	require.NoError(t, r.DeserializeUint32ArrayOrder(out, cdr.BigEndian))
	assert.Equal(t, in, out)
}

func TestWCharArrayRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	in := []rune{'a', '€', '水'}
	require.NoError(t, c.SerializeWCharArray(in))

	out := make([]rune, len(in))
	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	require.NoError(t, r.DeserializeWCharArray(out))
	assert.Equal(t, in, out)
}

func TestLongDoubleArrayRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	var a, b cdr.LongDouble
	copy(a[:], []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	copy(b[:], []byte{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1})
	in := []cdr.LongDouble{a, b}
	require.NoError(t, c.SerializeInt8(1)) // force 7 bytes of padding before the 8-aligned array
	require.NoError(t, c.SerializeLongDoubleArray(in))

	out := make([]cdr.LongDouble, len(in))
	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	_, err := r.DeserializeInt8()
	require.NoError(t, err)
	require.NoError(t, r.DeserializeLongDoubleArray(out))
	assert.Equal(t, in, out)
}

func TestSerializeNullStringWritesZeroLength(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	require.NoError(t, c.SerializeNullString())
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, c.GetBufferPointer())

	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	data, charCount, err := r.DeserializeString()
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 0, charCount)
}

func TestSerializeStringBytesExplicitLength(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	require.NoError(t, c.SerializeStringBytes([]byte("hey")))
	assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x00, 'h', 'e', 'y', 0x00}, c.GetBufferPointer())
}

func TestByteArrayRoundTrip(t *testing.T) {
	c := newCodec(cdr.FlavorPlain, cdr.LittleEndian)
	in := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.NoError(t, c.SerializeByteArray(in))

	out := make([]byte, len(in))
	r := cdr.New(buffer.NewFromBytes(c.GetBufferPointer()), cdr.LittleEndian, cdr.FlavorPlain)
	require.NoError(t, r.DeserializeByteArray(out))
	assert.Equal(t, in, out)
}

func TestDeserializeBoolArrayRejectsNonBinaryByte(t *testing.T) {
	raw := []byte{0x01, 0x02}
	c := cdr.New(buffer.NewFromBytes(raw), cdr.LittleEndian, cdr.FlavorPlain)
	before := c.GetState()
	dst := make([]bool, 2)
	err := c.DeserializeBoolArray(dst)
	require.Error(t, err)
	var cerr *cdr.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, cdr.KindBadParameter, cerr.Kind)
	assert.Equal(t, before, c.GetState())
}
