package bitvec

// Amount is the set of unsigned integer types accepted as a shift amount.
// Every width is normalized to the canonical uint before the one shift
// algorithm runs.
type Amount interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// normalizeShift widens amount to uint64 and saturates it at the receiver
// length before narrowing to the canonical width. Saturation loses nothing:
// any amount >= length already means an all-zero result, so the largest
// useful amount is the length itself.
func normalizeShift[S Amount](amount S, length int) uint {
	a := uint64(amount)
	if a > uint64(length) {
		return uint(length)
	}
	return uint(a)
}

// Shl returns a new vector holding v shifted left by amount. v is left
// unmodified.
func Shl[T Element, S Amount](v *BitVec[T], amount S) *BitVec[T] {
	out := v.Clone()
	out.ShiftLeft(normalizeShift(amount, out.Len()))
	return out
}

// Shr returns a new vector holding v shifted right by amount. v is left
// unmodified.
func Shr[T Element, S Amount](v *BitVec[T], amount S) *BitVec[T] {
	out := v.Clone()
	out.ShiftRight(normalizeShift(amount, out.Len()))
	return out
}

// ShlAssign shifts v left by amount in place.
func ShlAssign[T Element, S Amount](v *BitVec[T], amount S) {
	v.ShiftLeft(normalizeShift(amount, v.Len()))
}

// ShrAssign shifts v right by amount in place.
func ShrAssign[T Element, S Amount](v *BitVec[T], amount S) {
	v.ShiftRight(normalizeShift(amount, v.Len()))
}

// SliceShlAssign shifts the bits viewed by s left by amount in place. The
// view owns no storage, so only the assign form exists for slices.
func SliceShlAssign[T Element, S Amount](s BitSlice[T], amount S) {
	s.ShiftLeft(normalizeShift(amount, s.Len()))
}

// SliceShrAssign shifts the bits viewed by s right by amount in place.
func SliceShrAssign[T Element, S Amount](s BitSlice[T], amount S) {
	s.ShiftRight(normalizeShift(amount, s.Len()))
}
