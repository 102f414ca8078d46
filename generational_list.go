package slotlist

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/slotlist/internal/container"
	"github.com/hupe1980/slotlist/internal/conv"
	"github.com/hupe1980/slotlist/internal/queue"
)

// GenerationalList stores items addressed by a Handle. Every slot carries a
// version that is bumped when its item is removed and again when the slot is
// reused, so handles to removed items are rejected even after the slot holds
// a new item.
//
// Slot versions are 32-bit and wrap around; a stale handle could only match
// again after its slot was recycled 2^31 times.
//
// A GenerationalList is not safe for concurrent use.
type GenerationalList[T any] struct {
	items         container.Buffer[T]
	versions      container.Buffer[uint32]
	free          queue.FIFO
	growIncrement int // 0 selects doubling
	live          int
	cursors       []*ListCursor[T] // released cursors ready for reuse

	logger  *Logger
	metrics MetricsCollector
}

// NewGenerationalList creates an empty GenerationalList.
func NewGenerationalList[T any](opts ...Option) *GenerationalList[T] {
	o := applyOptions(opts)

	return &GenerationalList[T]{
		items:         container.NewBuffer[T](o.initialCapacity),
		versions:      container.NewBuffer[uint32](o.initialCapacity),
		growIncrement: o.growIncrement,
		logger:        o.logger,
		metrics:       o.metricsCollector,
	}
}

// Add stores item and returns its handle. A recycled slot (oldest removal
// first) is reused with its version advanced; otherwise the item is appended
// with version 0.
func (l *GenerationalList[T]) Add(item T) Handle {
	if index, ok := l.free.Pop(); ok {
		l.items.Set(index, item)
		v := l.versions.Ptr(index)
		*v++
		l.live++
		l.metrics.RecordAdd(ContainerGenerationalList, true)
		return Handle{Index: index, Version: *v}
	}

	from := l.items.Cap()
	if l.items.Append(item, l.growIncrement) {
		l.logger.LogGrow(ContainerGenerationalList, from, l.items.Cap())
		l.metrics.RecordGrow(ContainerGenerationalList, from, l.items.Cap())
	}
	l.versions.Append(0, l.growIncrement)
	l.live++
	l.metrics.RecordAdd(ContainerGenerationalList, false)
	return Handle{Index: l.items.Len() - 1, Version: 0}
}

// Remove deletes the item identified by h and queues its slot for reuse.
//
// It fails with ErrInvalidHandle if h.Index is outside the list and with
// ErrAlreadyRemoved if the slot's version no longer matches h.Version.
func (l *GenerationalList[T]) Remove(h Handle) error {
	if h.Index < 0 || h.Index >= l.items.Len() {
		err := &HandleError{Op: "remove", Handle: h, cause: ErrInvalidHandle}
		l.logger.LogViolation(ContainerGenerationalList, "remove", err)
		l.metrics.RecordRemove(ContainerGenerationalList, err)
		return err
	}

	v := l.versions.Ptr(h.Index)
	if *v != h.Version || !live(*v) {
		err := &HandleError{Op: "remove", Handle: h, Current: *v, cause: ErrAlreadyRemoved}
		l.logger.LogViolation(ContainerGenerationalList, "remove", err)
		l.metrics.RecordRemove(ContainerGenerationalList, err)
		return err
	}

	var zero T
	l.items.Set(h.Index, zero)
	*v++
	l.free.Push(h.Index)
	l.live--
	l.metrics.RecordRemove(ContainerGenerationalList, nil)
	return nil
}

// Contains reports whether h identifies a live item. It never fails and is
// the way to probe a handle before calling Get.
func (l *GenerationalList[T]) Contains(h Handle) bool {
	if h.Index < 0 || h.Index >= l.items.Len() {
		return false
	}
	v := l.versions.At(h.Index)
	return v == h.Version && live(v)
}

// Get returns the item identified by h, or ErrNotFound if Contains(h) is false.
func (l *GenerationalList[T]) Get(h Handle) (T, error) {
	if !l.Contains(h) {
		var zero T
		return zero, l.notFound("get", h)
	}
	return l.items.At(h.Index), nil
}

// MustGet is like Get but panics if h does not identify a live item.
func (l *GenerationalList[T]) MustGet(h Handle) T {
	item, err := l.Get(h)
	if err != nil {
		panic(err)
	}
	return item
}

// Ptr returns a pointer to the item identified by h for in-place updates.
// The pointer stays valid until the item is removed or the list grows.
func (l *GenerationalList[T]) Ptr(h Handle) (*T, error) {
	if !l.Contains(h) {
		return nil, l.notFound("ptr", h)
	}
	return l.items.Ptr(h.Index), nil
}

// Iterate returns the live items in ascending slot order. Every call starts
// a fresh traversal; the list must not be modified while it runs.
//
// Free slots are recognised by their version, so live items holding the zero
// value of T are still yielded.
func (l *GenerationalList[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.items.Len(); i++ {
			if !live(l.versions.At(i)) {
				continue
			}
			if !yield(l.items.At(i)) {
				return
			}
		}
	}
}

// All returns the live items together with their handles, in ascending slot order.
func (l *GenerationalList[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := 0; i < l.items.Len(); i++ {
			v := l.versions.At(i)
			if !live(v) {
				continue
			}
			if !yield(Handle{Index: i, Version: v}, l.items.At(i)) {
				return
			}
		}
	}
}

// LiveSet returns the slot indices of all live items as a roaring bitmap.
// The bitmap is a snapshot and does not follow later changes.
func (l *GenerationalList[T]) LiveSet() (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i := 0; i < l.items.Len(); i++ {
		if !live(l.versions.At(i)) {
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
func (l *GenerationalList[T]) Len() int { return l.live }

// Cap returns the number of slots the list can hold before it grows.
func (l *GenerationalList[T]) Cap() int { return l.items.Cap() }

// FreeCount returns the number of free slots waiting for reuse.
func (l *GenerationalList[T]) FreeCount() int { return l.free.Len() }

func (l *GenerationalList[T]) notFound(op string, h Handle) error {
	var current uint32
	if h.Index >= 0 && h.Index < l.versions.Len() {
		current = l.versions.At(h.Index)
	}
	err := &HandleError{Op: op, Handle: h, Current: current, cause: ErrNotFound}
	l.logger.LogViolation(ContainerGenerationalList, op, err)
	l.metrics.RecordMiss(ContainerGenerationalList, op)
	return err
}
