package slotlist

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/slotlist/internal/container"
	"github.com/hupe1980/slotlist/internal/conv"
	"github.com/hupe1980/slotlist/internal/queue"
)

// SlotArray stores items in a flat array and addresses them by raw position.
// Removed slots are marked and recycled oldest-first; the array never shrinks.
//
// Indices carry no version, so an index kept across a remove may later point
// at an unrelated item. Callers that need stale-handle detection should use
// GenerationalList instead.
//
// A SlotArray is not safe for concurrent use.
type SlotArray[T any] struct {
	items         container.Buffer[T]
	removed       *bitset.BitSet // bit i set iff slot i is removed
	free          queue.FIFO
	growIncrement int
	live          int
	cursors       []*ArrayCursor[T] // released cursors ready for reuse

	logger  *Logger
	metrics MetricsCollector
}

// NewSlotArray creates an empty SlotArray.
func NewSlotArray[T any](opts ...Option) *SlotArray[T] {
	o := applyOptions(opts)

	inc := o.growIncrement
	if inc == 0 {
		inc = DefaultGrowIncrement
	}

	return &SlotArray[T]{
		items:         container.NewBuffer[T](o.initialCapacity),
		removed:       bitset.New(uint(o.initialCapacity)),
		growIncrement: inc,
		logger:        o.logger,
		metrics:       o.metricsCollector,
	}
}

// Add stores item and returns its index. Recycled slots are used first, in
// the order they were removed; otherwise the item goes after the last slot,
// growing the storage by GrowIncrement slots when it is full.
func (a *SlotArray[T]) Add(item T) int {
	if index, ok := a.free.Pop(); ok {
		a.items.Set(index, item)
		a.removed.Clear(uint(index))
		a.live++
		a.metrics.RecordAdd(ContainerSlotArray, true)
		return index
	}

	from := a.items.Cap()
	if a.items.Append(item, a.growIncrement) {
		a.logger.LogGrow(ContainerSlotArray, from, a.items.Cap())
		a.metrics.RecordGrow(ContainerSlotArray, from, a.items.Cap())
	}
	a.live++
	a.metrics.RecordAdd(ContainerSlotArray, false)
	return a.items.Len() - 1
}

// RemoveAt marks the slot at index as removed and queues it for reuse.
//
// Unlike a bare flag write, the index is validated: it fails with
// ErrOutOfRange for indices never handed out and with ErrRemoved for slots
// that are already free, so a slot can never be queued twice.
func (a *SlotArray[T]) RemoveAt(index int) error {
	if err := a.check("remove", index); err != nil {
		a.logger.LogViolation(ContainerSlotArray, "remove", err)
		a.metrics.RecordRemove(ContainerSlotArray, err)
		return err
	}

	// Drop whatever the item references so the GC can reclaim it.
	var zero T
	a.items.Set(index, zero)
	a.removed.Set(uint(index))
	a.free.Push(index)
	a.live--
	a.metrics.RecordRemove(ContainerSlotArray, nil)
	return nil
}

// Exists reports whether index refers to a live item. Out-of-range indices
// report false; Exists never fails.
func (a *SlotArray[T]) Exists(index int) bool {
	return index >= 0 && index < a.items.Len() && !a.removed.Test(uint(index))
}

// Get returns a pointer to the item at index. Writes through the pointer
// update the stored item. The pointer stays valid until the slot is removed
// or the array grows.
func (a *SlotArray[T]) Get(index int) (*T, error) {
	if err := a.check("get", index); err != nil {
		a.logger.LogViolation(ContainerSlotArray, "get", err)
		a.metrics.RecordMiss(ContainerSlotArray, "get")
		return nil, err
	}
	return a.items.Ptr(index), nil
}

// Iterate returns the live items in ascending slot order. Every call starts
// a fresh traversal that reads the array as it goes; the array must not be
// modified while a traversal is running.
func (a *SlotArray[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.items.Len(); i++ {
			if a.removed.Test(uint(i)) {
				continue
			}
			if !yield(a.items.At(i)) {
				return
			}
		}
	}
}

// All returns the live items together with their indices, in ascending slot order.
func (a *SlotArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.items.Len(); i++ {
			if a.removed.Test(uint(i)) {
				continue
			}
			if !yield(i, a.items.At(i)) {
				return
			}
		}
	}
}

// LiveSet returns the indices of all live items as a roaring bitmap.
// The bitmap is a snapshot and does not follow later changes.
func (a *SlotArray[T]) LiveSet() (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i := 0; i < a.items.Len(); i++ {
		if a.removed.Test(uint(i)) {
			continue
		}
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		bm.Add(id)
	}
	return bm, nil
}

// Len returns the number of live items.
func (a *SlotArray[T]) Len() int { return a.live }

// End returns the number of slots ever allocated, live or removed.
func (a *SlotArray[T]) End() int { return a.items.Len() }

// Cap returns the number of slots the array can hold before it grows.
func (a *SlotArray[T]) Cap() int { return a.items.Cap() }

// FreeCount returns the number of removed slots waiting for reuse.
func (a *SlotArray[T]) FreeCount() int { return a.free.Len() }

// GrowIncrement returns the number of slots added when the array is full.
func (a *SlotArray[T]) GrowIncrement() int { return a.growIncrement }

// SetGrowIncrement changes the growth step. Values below 1 are raised to 1.
func (a *SlotArray[T]) SetGrowIncrement(n int) {
	a.growIncrement = clampIncrement(n)
}

func (a *SlotArray[T]) check(op string, index int) error {
	if index < 0 || index >= a.items.Len() {
		return &IndexError{Op: op, Index: index, End: a.items.Len(), cause: ErrOutOfRange}
	}
	if a.removed.Test(uint(index)) {
		return &IndexError{Op: op, Index: index, End: a.items.Len(), cause: ErrRemoved}
	}
	return nil
}
