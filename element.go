package bitvec

import (
	"fmt"
	"math/bits"
)

// Element is the set of unsigned integer types usable as the packing unit of
// a BitVec. The element width fixes how many bits one buffer slot holds.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// elemBits returns the width W of the element type in bits (8, 16, 32 or 64).
func elemBits[T Element]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// testBit reports whether physical bit pos of e is set.
func testBit[T Element](e T, pos uint) bool {
	if pos >= elemBits[T]() {
		panic(fmt.Sprintf("bitvec: bit position %d out of range for %d-bit element", pos, elemBits[T]()))
	}
	return e&(1<<pos) != 0
}

// writeBit returns e with physical bit pos set to v.
func writeBit[T Element](e T, pos uint, v bool) T {
	if pos >= elemBits[T]() {
		panic(fmt.Sprintf("bitvec: bit position %d out of range for %d-bit element", pos, elemBits[T]()))
	}
	mask := T(1) << pos
	if v {
		return e | mask
	}
	return e &^ mask
}

// onesCount returns the number of set bits in e.
func onesCount[T Element](e T) int {
	return bits.OnesCount64(uint64(e))
}
