package bitvec

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/bitvec/internal/buffer"
)

// BitVec is an owning, growable sequence of bits packed into elements of
// type T. Bits in the last element past the logical length are unspecified
// and never observed by public operations.
//
// A BitVec is not safe for concurrent mutation; distinct vectors are fully
// independent.
type BitVec[T Element] struct {
	order Order
	buf   buffer.Buffer[T]
	n     int
}

// New creates an empty BitVec with the given ordering policy. A nil order
// means BigEndian.
func New[T Element](order Order) *BitVec[T] {
	return &BitVec[T]{order: order}
}

// Len returns the logical length in bits.
func (v *BitVec[T]) Len() int { return v.n }

// Cap returns the number of bits the vector can hold without growing its
// element buffer.
func (v *BitVec[T]) Cap() int { return v.buf.Len() * int(elemBits[T]()) }

// Order returns the vector's bit-ordering policy.
func (v *BitVec[T]) Order() Order { return v.ord() }

func (v *BitVec[T]) ord() Order {
	if v.order == nil {
		return BigEndian
	}
	return v.order
}

// Bits returns a BitSlice over the whole vector. The slice borrows the
// vector's buffer and is invalidated by a Push that reallocates.
func (v *BitVec[T]) Bits() BitSlice[T] {
	return BitSlice[T]{order: v.ord(), elems: v.buf.Items(), n: v.n}
}

// Slice returns a BitSlice over the logical sub-range [start, end). It
// panics when the range is invalid.
func (v *BitVec[T]) Slice(start, end int) BitSlice[T] {
	if start < 0 || end < start || end > v.n {
		panic(fmt.Sprintf("bitvec: slice range [%d, %d) out of range [0, %d)", start, end, v.n))
	}
	w := elemBits[T]()
	return BitSlice[T]{
		order: v.ord(),
		elems: v.buf.Items()[uint(start)/w:],
		off:   uint(start) % w,
		n:     end - start,
	}
}

// Get returns the bit at logical index i. It panics if i is out of range.
func (v *BitVec[T]) Get(i int) bool { return v.Bits().Get(i) }

// Set writes the bit at logical index i. It panics if i is out of range.
func (v *BitVec[T]) Set(i int, val bool) { v.Bits().Set(i, val) }

// Push appends one bit at index Len, growing the element buffer as needed.
func (v *BitVec[T]) Push(val bool) {
	w := int(elemBits[T]())
	v.buf.Grow((v.n + w) / w)
	v.n++
	v.Set(v.n-1, val)
}

// Pop removes and returns the last bit. The second return value is false
// when the vector is empty.
func (v *BitVec[T]) Pop() (bool, bool) {
	if v.n == 0 {
		return false, false
	}
	val := v.Get(v.n - 1)
	v.Set(v.n-1, false)
	v.n--
	return val, true
}

// Clear removes all bits, keeping the allocation for reuse.
func (v *BitVec[T]) Clear() {
	v.buf.Reset()
	v.n = 0
}

// Truncate shortens the vector to n bits. It is a no-op when n is not
// smaller than the current length.
func (v *BitVec[T]) Truncate(n int) {
	if n < 0 || n >= v.n {
		return
	}
	v.Bits().zeroRange(n, v.n)
	v.n = n
}

// Count returns the number of set bits.
func (v *BitVec[T]) Count() int {
	w := int(elemBits[T]())
	full := v.n / w
	count := 0
	for _, e := range v.buf.Items()[:full] {
		count += onesCount(e)
	}
	for i := full * w; i < v.n; i++ {
		if v.Get(i) {
			count++
		}
	}
	return count
}

// Clone returns a deep copy sharing no storage with v.
func (v *BitVec[T]) Clone() *BitVec[T] {
	return &BitVec[T]{order: v.order, buf: v.buf.Clone(), n: v.n}
}

// Equal reports whether v and o hold the same bit sequence. Ordering policy
// and buffer contents past the logical length do not participate.
func (v *BitVec[T]) Equal(o *BitVec[T]) bool {
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.Get(i) != o.Get(i) {
			return false
		}
	}
	return true
}

// ShiftLeft shifts the whole bit sequence toward index 0 by amount,
// zero-filling vacated high positions. See BitSlice.ShiftLeft.
func (v *BitVec[T]) ShiftLeft(amount uint) { v.Bits().ShiftLeft(amount) }

// ShiftRight shifts the whole bit sequence away from index 0 by amount,
// zero-filling vacated low positions. See BitSlice.ShiftRight.
func (v *BitVec[T]) ShiftRight(amount uint) { v.Bits().ShiftRight(amount) }

// Ones returns an iterator over the indices of set bits, in ascending order.
func (v *BitVec[T]) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < v.n; i++ {
			if v.Get(i) && !yield(i) {
				return
			}
		}
	}
}

// String returns the bits as a compact "0b…" literal, logical index 0 first.
func (v *BitVec[T]) String() string {
	var sb strings.Builder
	sb.Grow(v.n + 2)
	sb.WriteString("0b")
	for i := 0; i < v.n; i++ {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
