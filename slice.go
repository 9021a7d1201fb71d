package bitvec

import "fmt"

// BitSlice is a non-owning window over a run of bits inside an element
// buffer. It borrows the elements of the vector (or slice) it was taken
// from; like a Go slice over a backing array, it stays valid until the
// source vector reallocates its buffer.
//
// The zero value is an empty slice with BigEndian ordering.
type BitSlice[T Element] struct {
	order Order
	elems []T
	off   uint // logical bit offset into elems[0]
	n     int  // length in bits
}

// Len returns the number of bits in the slice.
func (s BitSlice[T]) Len() int { return s.n }

// Order returns the slice's bit-ordering policy.
func (s BitSlice[T]) Order() Order { return s.ord() }

func (s BitSlice[T]) ord() Order {
	if s.order == nil {
		return BigEndian
	}
	return s.order
}

// locate resolves a logical bit index to (element index, physical position).
func (s BitSlice[T]) locate(i int) (int, uint) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, s.n))
	}
	w := elemBits[T]()
	abs := s.off + uint(i)
	return int(abs / w), s.ord().Position(w, abs%w)
}

// Get returns the bit at logical index i. It panics if i is out of range.
func (s BitSlice[T]) Get(i int) bool {
	elem, pos := s.locate(i)
	return testBit(s.elems[elem], pos)
}

// Set writes the bit at logical index i. It panics if i is out of range.
func (s BitSlice[T]) Set(i int, v bool) {
	elem, pos := s.locate(i)
	s.elems[elem] = writeBit(s.elems[elem], pos, v)
}

// Count returns the number of set bits in the slice.
func (s BitSlice[T]) Count() int {
	count := 0
	for i := 0; i < s.n; i++ {
		if s.Get(i) {
			count++
		}
	}
	return count
}

// ShiftLeft shifts the bit sequence toward logical index 0 by amount,
// in place. The bit at index j becomes the old bit at j+amount; vacated
// high positions are zero-filled. Shifting by amount >= Len zeroes the
// whole slice.
//
// The shift walks logical indices and re-derives physical positions per
// bit, so it is correct under any ordering policy.
func (s BitSlice[T]) ShiftLeft(amount uint) {
	if amount == 0 || s.n == 0 {
		return
	}
	if amount >= uint(s.n) {
		s.zeroRange(0, s.n)
		return
	}
	k := int(amount)
	for j := 0; j < s.n-k; j++ {
		s.Set(j, s.Get(j+k))
	}
	s.zeroRange(s.n-k, s.n)
}

// ShiftRight shifts the bit sequence away from logical index 0 by amount,
// in place. The bit at index j becomes the old bit at j-amount; vacated
// low positions are zero-filled. Shifting by amount >= Len zeroes the
// whole slice.
func (s BitSlice[T]) ShiftRight(amount uint) {
	if amount == 0 || s.n == 0 {
		return
	}
	if amount >= uint(s.n) {
		s.zeroRange(0, s.n)
		return
	}
	k := int(amount)
	for j := s.n - 1; j >= k; j-- {
		s.Set(j, s.Get(j-k))
	}
	s.zeroRange(0, k)
}

// zeroRange clears bits in [from, to).
func (s BitSlice[T]) zeroRange(from, to int) {
	for i := from; i < to; i++ {
		s.Set(i, false)
	}
}
