package bitvec

import "fmt"

// The construction surface mirrors progressive defaults: order defaults to
// BigEndian, the element width to uint8 (the narrowest supported).

// Of builds a BitVec from a literal list of bit markers with the default
// ordering and element width.
//
//	bitvec.Of(1, 0, 1)
func Of(markers ...any) *BitVec[uint8] {
	return Make[uint8](BigEndian, markers...)
}

// OfOrder builds a BitVec from a literal list of bit markers with an
// explicit ordering policy and the default element width.
func OfOrder(order Order, markers ...any) *BitVec[uint8] {
	return Make[uint8](order, markers...)
}

// Make builds a BitVec from a literal list of bit markers with an explicit
// ordering policy and element width. The vector's length equals len(markers)
// and bit i is the truthiness of markers[i]; an empty list yields an empty
// vector. It panics on a marker that is not an integer, float or bool.
func Make[T Element](order Order, markers ...any) *BitVec[T] {
	v := New[T](order)
	w := int(elemBits[T]())
	v.buf.Grow((len(markers) + w - 1) / w)
	v.n = len(markers)
	for i, m := range markers {
		if truthy(m) {
			v.Set(i, true)
		}
	}
	return v
}

// Repeat builds a BitVec of count copies of one bit marker with the default
// ordering and element width.
//
//	bitvec.Repeat(1, 5) // five set bits
func Repeat(marker any, count int) *BitVec[uint8] {
	return MakeRepeat[uint8](BigEndian, marker, count)
}

// RepeatOrder builds a BitVec of count copies of one bit marker with an
// explicit ordering policy and the default element width.
func RepeatOrder(order Order, marker any, count int) *BitVec[uint8] {
	return MakeRepeat[uint8](order, marker, count)
}

// MakeRepeat builds a BitVec of count copies of one bit marker with an
// explicit ordering policy and element width. A count of zero yields an
// empty vector; a negative count panics.
func MakeRepeat[T Element](order Order, marker any, count int) *BitVec[T] {
	if count < 0 {
		panic(fmt.Sprintf("bitvec: negative repeat count %d", count))
	}
	v := New[T](order)
	w := int(elemBits[T]())
	v.buf.Grow((count + w - 1) / w)
	v.n = count
	if truthy(marker) {
		for i := 0; i < count; i++ {
			v.Set(i, true)
		}
	}
	return v
}

// truthy reports whether a bit marker stands for a 1 bit: any non-zero
// numeric value, or boolean true. Negative values are non-zero and thus
// truthy. Unsupported marker types panic.
func truthy(marker any) bool {
	switch m := marker.(type) {
	case bool:
		return m
	case int:
		return m != 0
	case int8:
		return m != 0
	case int16:
		return m != 0
	case int32:
		return m != 0
	case int64:
		return m != 0
	case uint:
		return m != 0
	case uint8:
		return m != 0
	case uint16:
		return m != 0
	case uint32:
		return m != 0
	case uint64:
		return m != 0
	case uintptr:
		return m != 0
	case float32:
		return m != 0
	case float64:
		return m != 0
	default:
		panic(fmt.Sprintf("bitvec: unsupported bit marker type %T", marker))
	}
}
