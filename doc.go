// Package bitvec provides a generic, ordering-aware bit-vector for Go.
//
// A BitVec packs individual bits into an array of fixed-width unsigned
// integer elements (uint8, uint16, uint32 or uint64, selected by type
// parameter) and addresses them through a pluggable bit-ordering policy.
// The policy decides, inside one element, which physical bit position
// corresponds to logical bit index 0:
//
//   - BigEndian (the default): logical bit 0 is the most-significant bit.
//   - LittleEndian: logical bit 0 is the least-significant bit.
//
// # Quick Start
//
//	v := bitvec.Of(1, 0, 1, 1)              // BigEndian, uint8 elements
//	v.Get(0)                                 // true
//	v.ShiftLeft(2)                           // now 1 1 0 0
//
//	w := bitvec.Make[uint32](bitvec.LittleEndian, 0, 1, 0)
//	r := bitvec.Repeat(1, 5)                 // five set bits
//
// # Bit Markers
//
// The construction functions accept markers of any integer kind, float32,
// float64 or bool. A marker contributes a 1 bit iff its value is non-zero
// (for bool, iff it is true). Note that -1 is non-zero and therefore truthy.
//
// # Slices
//
// BitVec.Bits and BitVec.Slice return a BitSlice, a non-owning window over
// the vector's elements. A BitSlice aliases the vector's buffer the same way
// a Go slice aliases its backing array: it stays valid until an operation on
// the vector reallocates the buffer (Push past capacity).
//
// # Shifting
//
// ShiftLeft and ShiftRight move the bit sequence as a whole, in logical
// index space, filling vacated positions with zeros. Shifting by any amount
// greater than or equal to the length yields an all-zero vector of unchanged
// length. The Shl/Shr/ShlAssign/ShrAssign functions accept the shift amount
// as any unsigned integer type and normalize it to the canonical width.
//
// The package is not safe for concurrent mutation of a single vector;
// distinct vectors share no state and may be used from different goroutines
// freely. Guard a shared vector with a mutex in the caller.
package bitvec
