package bitvec

// Order maps a logical in-element bit index to the physical bit position to
// manipulate. Implementations must be stateless and bijective over [0, width)
// for every supported element width.
type Order interface {
	// Position returns the physical bit position for logical index within an
	// element of the given width in bits. The caller guarantees index < width.
	Position(width, index uint) uint
}

var (
	// BigEndian counts logical bits from the most-significant end of each
	// element: logical bit 0 is physical bit width-1. This is the default
	// ordering for all constructors.
	BigEndian Order = bigEndian{}

	// LittleEndian counts logical bits from the least-significant end of
	// each element: logical bit 0 is physical bit 0.
	LittleEndian Order = littleEndian{}
)

type bigEndian struct{}

func (bigEndian) Position(width, index uint) uint { return width - 1 - index }

type littleEndian struct{}

func (littleEndian) Position(_, index uint) uint { return index }
