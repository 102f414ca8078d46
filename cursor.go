package slotlist

// ArrayCursor walks the live items of a SlotArray one step at a time.
//
//	c := arr.Cursor()
//	defer c.Release()
//	for c.MoveNext() {
//	    c.Current().Hits++
//	}
//
// Cursors are recycled: Release hands the cursor back to its array, and the
// next Cursor call returns it again instead of allocating.
type ArrayCursor[T any] struct {
	array    *SlotArray[T]
	index    int
	released bool
}

// Cursor returns a cursor positioned before the first live item.
func (a *SlotArray[T]) Cursor() *ArrayCursor[T] {
	if n := len(a.cursors); n > 0 {
		c := a.cursors[n-1]
		a.cursors[n-1] = nil
		a.cursors = a.cursors[:n-1]
		c.released = false
		c.Reset()
		return c
	}
	return &ArrayCursor[T]{array: a, index: -1}
}

// MoveNext advances to the next live item and reports whether there is one.
func (c *ArrayCursor[T]) MoveNext() bool {
	end := c.array.items.Len()
	for c.index < end {
		c.index++
		if c.index < end && !c.array.removed.Test(uint(c.index)) {
			return true
		}
	}
	return false
}

// Current returns a pointer to the item under the cursor. It is only valid
// after MoveNext returned true.
func (c *ArrayCursor[T]) Current() *T {
	return c.array.items.Ptr(c.index)
}

// Index returns the slot index under the cursor.
func (c *ArrayCursor[T]) Index() int { return c.index }

// Reset moves the cursor back before the first item.
func (c *ArrayCursor[T]) Reset() { c.index = -1 }

// Release returns the cursor to its array for reuse. The cursor must not be
// used afterwards. Releasing twice is a no-op.
func (c *ArrayCursor[T]) Release() {
	if c.released {
		return
	}
	c.released = true
	c.array.cursors = append(c.array.cursors, c)
}

// ListCursor walks the live items of a GenerationalList one step at a time.
// It is recycled through its list the same way as ArrayCursor.
type ListCursor[T any] struct {
	list     *GenerationalList[T]
	index    int
	released bool
}

// Cursor returns a cursor positioned before the first live item.
func (l *GenerationalList[T]) Cursor() *ListCursor[T] {
	if n := len(l.cursors); n > 0 {
		c := l.cursors[n-1]
		l.cursors[n-1] = nil
		l.cursors = l.cursors[:n-1]
		c.released = false
		c.Reset()
		return c
	}
	return &ListCursor[T]{list: l, index: -1}
}

// MoveNext advances to the next live item and reports whether there is one.
func (c *ListCursor[T]) MoveNext() bool {
	end := c.list.items.Len()
	for c.index < end {
		c.index++
		if c.index < end && live(c.list.versions.At(c.index)) {
			return true
		}
	}
	return false
}

// Current returns the item under the cursor. It is only valid after
// MoveNext returned true.
func (c *ListCursor[T]) Current() T {
	return c.list.items.At(c.index)
}

// Handle returns the handle of the item under the cursor.
func (c *ListCursor[T]) Handle() Handle {
	return Handle{Index: c.index, Version: c.list.versions.At(c.index)}
}

// Reset moves the cursor back before the first item.
func (c *ListCursor[T]) Reset() { c.index = -1 }

// Release returns the cursor to its list for reuse. The cursor must not be
// used afterwards. Releasing twice is a no-op.
func (c *ListCursor[T]) Release() {
	if c.released {
		return
	}
	c.released = true
	c.list.cursors = append(c.list.cursors, c)
}
