package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/go-cdr/lib/buffer"
)

func TestGrowExpandsLengthExactly(t *testing.T) {
	b := buffer.New(2)
	require.True(t, b.Grow(5))
	assert.Equal(t, 5, b.Len())
	assert.GreaterOrEqual(t, b.Capacity(), 5)
}

func TestGrowZeroIsNoOp(t *testing.T) {
	b := buffer.New(4)
	require.True(t, b.Grow(0))
	assert.Equal(t, 0, b.Len())
}

func TestGrowNegativeFails(t *testing.T) {
	b := buffer.New(4)
	assert.False(t, b.Grow(-1))
}

func TestGrowRespectsCap(t *testing.T) {
	b := buffer.NewBounded(4, 8)
	assert.True(t, b.Grow(8))
	assert.False(t, b.Grow(1))
}

func TestGrowDoublesCapacityAmortized(t *testing.T) {
	b := buffer.New(1)
	require.True(t, b.Grow(1))
	cap1 := b.Capacity()
	require.True(t, b.Grow(1))
	cap2 := b.Capacity()
	assert.GreaterOrEqual(t, cap2, 2*cap1)
}

func TestTruncate(t *testing.T) {
	b := buffer.New(4)
	require.True(t, b.Grow(4))
	b.Truncate(1)
	assert.Equal(t, 1, b.Len())
}

func TestPoolGetReturnsEmptyBuffer(t *testing.T) {
	p := buffer.NewPool(8)
	b := p.Get()
	require.True(t, b.Grow(8))
	p.Put(b)

	b2 := p.Get()
	assert.Equal(t, 0, b2.Len())
}
