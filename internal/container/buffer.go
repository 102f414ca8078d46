package container

// Buffer is a growable, indexable array. Its capacity only changes through
// Grow (or Append when full) and it never shrinks.
//
// The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	items []T
}

// NewBuffer creates a Buffer with room for capacity items.
func NewBuffer[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return Buffer[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of slots handed out so far.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the number of slots the buffer can hold before growing.
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// At returns the item at index i. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T { return b.items[i] }

// Ptr returns a pointer to the slot at index i.
// The pointer is invalidated by the next Grow.
func (b *Buffer[T]) Ptr(i int) *T { return &b.items[i] }

// Set overwrites the item at index i.
func (b *Buffer[T]) Set(i int, v T) { b.items[i] = v }

// Grow extends the capacity by exactly n slots. Existing items are kept.
func (b *Buffer[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	grown := make([]T, len(b.items), cap(b.items)+n)
	copy(grown, b.items)
	b.items = grown
}

// Append stores v after the last slot and reports whether the buffer had to
// grow. When full, the buffer grows by increment slots; an increment below 1
// selects doubling instead (with a floor of 4 slots).
func (b *Buffer[T]) Append(v T, increment int) bool {
	grew := false
	if len(b.items) == cap(b.items) {
		if increment < 1 {
			increment = max(cap(b.items), 4)
		}
		b.Grow(increment)
		grew = true
	}
	b.items = b.items[:len(b.items)+1]
	b.items[len(b.items)-1] = v
	return grew
}
