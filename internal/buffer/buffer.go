// Package buffer implements the growable element storage backing a BitVec.
package buffer

// Buffer is a growable contiguous array of elements. It supports random
// access through Items and amortized O(1) growth. Not thread-safe.
type Buffer[T any] struct {
	items []T
}

// Len returns the number of allocated elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Items returns the backing slice. Mutations through the returned slice are
// visible to the buffer; the slice is invalidated by the next Grow.
func (b *Buffer[T]) Items() []T { return b.items }

// Grow ensures the buffer holds at least n elements, zero-initializing any
// new slots. Growth at least doubles the current allocation to keep
// repeated single-element growth amortized O(1).
func (b *Buffer[T]) Grow(n int) {
	if n <= len(b.items) {
		return
	}
	if n <= cap(b.items) {
		old := len(b.items)
		b.items = b.items[:n]
		clear(b.items[old:])
		return
	}
	newCap := 2 * cap(b.items)
	if newCap < n {
		newCap = n
	}
	items := make([]T, n, newCap)
	copy(items, b.items)
	b.items = items
}

// Truncate reduces the buffer to n elements. It is a no-op when n is not
// smaller than the current length.
func (b *Buffer[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(b.items) {
		b.items = b.items[:n]
	}
}

// Reset empties the buffer, keeping the allocation for reuse.
func (b *Buffer[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

// Clone returns a deep copy of the buffer.
func (b *Buffer[T]) Clone() Buffer[T] {
	items := make([]T, len(b.items))
	copy(items, b.items)
	return Buffer[T]{items: items}
}
