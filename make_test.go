package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/testutil"
)

// A marker is truthy iff it is non-zero (bool: true). In particular -1 is
// truthy and 0.5 is truthy.
func TestTruthiness(t *testing.T) {
	v := Of(0, 1, -1, 0.5, true, false)
	assertBits(t, v, []int{0, 1, 1, 1, 1, 0})

	// The rule is independent of width and order.
	w := Make[uint64](LittleEndian, 0, 1, -1, 0.5, true, false)
	assertBits(t, w, []int{0, 1, 1, 1, 1, 0})
}

func TestTruthinessKinds(t *testing.T) {
	truthyMarkers := []any{
		int(1), int8(-1), int16(2), int32(-3), int64(1),
		uint(1), uint8(255), uint16(1), uint32(1), uint64(1), uintptr(1),
		float32(0.001), float64(-2.5), true,
	}
	for _, m := range truthyMarkers {
		assert.True(t, Of(m).Get(0), "marker %T(%v)", m, m)
	}

	falsyMarkers := []any{
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0), uintptr(0),
		float32(0), float64(0), false,
	}
	for _, m := range falsyMarkers {
		assert.False(t, Of(m).Get(0), "marker %T(%v)", m, m)
	}
}

func TestUnsupportedMarkerPanics(t *testing.T) {
	assert.Panics(t, func() { Of("1") })
	assert.Panics(t, func() { Repeat(nil, 3) })
	assert.Panics(t, func() { Of(1, 0, []int{1}) })
}

func TestConstructionForms(t *testing.T) {
	want := []int{0, 1}

	assertBits(t, Of(0, 1), want)
	assertBits(t, OfOrder(BigEndian, 0, 1), want)
	assertBits(t, OfOrder(LittleEndian, 0, 1), want)
	assertBits(t, Make[uint8](BigEndian, 0, 1), want)
	assertBits(t, Make[uint16](LittleEndian, 0, 1), want)
	assertBits(t, Make[uint32](BigEndian, 0, 1), want)
	assertBits(t, Make[uint64](LittleEndian, 0, 1), want)
}

func TestRepeatForms(t *testing.T) {
	v := Repeat(1, 5)
	require.Equal(t, 5, v.Len())
	assert.Equal(t, 5, v.Count())

	assert.Equal(t, 0, Repeat(0, 0).Len())
	assert.Equal(t, 70, RepeatOrder(LittleEndian, 1, 70).Count())
	assert.Equal(t, 70, MakeRepeat[uint16](BigEndian, 1, 70).Count())
	assert.Equal(t, 0, MakeRepeat[uint32](LittleEndian, 0, 70).Count())
	assert.Equal(t, 70, MakeRepeat[uint64](LittleEndian, -1, 70).Count())

	assert.Panics(t, func() { Repeat(1, -1) })
}

func TestEmptyConstruction(t *testing.T) {
	assert.Equal(t, 0, Of().Len())
	assert.Equal(t, 0, Make[uint64](LittleEndian).Len())
	assert.Equal(t, 0, Repeat(1, 0).Len())
}

// The packed representation depends on the ordering policy even when the
// logical content is identical.
func TestPackingByOrder(t *testing.T) {
	be := Make[uint8](BigEndian, 1, 0, 1, 1, 0, 0, 0, 0)
	le := Make[uint8](LittleEndian, 1, 0, 1, 1, 0, 0, 0, 0)

	assert.Equal(t, []uint8{0b1011_0000}, be.buf.Items())
	assert.Equal(t, []uint8{0b0000_1101}, le.buf.Items())
	assert.True(t, be.Equal(le))
}

func TestConstructionMatchesPush(t *testing.T) {
	rng := testutil.NewRNG(7)
	bits := rng.Bits(99)

	built := New[uint32](LittleEndian)
	for _, b := range bits {
		built.Push(b)
	}

	made := Make[uint32](LittleEndian, rng.Markers(bits)...)
	assert.True(t, built.Equal(made))
}
