package slotlist_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/testutil"
)

// BenchmarkSlotArrayAdd measures appends for different growth steps.
func BenchmarkSlotArrayAdd(b *testing.B) {
	for _, inc := range []int{1, 10, 1000} {
		b.Run(fmt.Sprintf("inc=%d", inc), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				arr := slotlist.NewSlotArray[int](slotlist.WithGrowIncrement(inc))
				for i := range 1000 {
					arr.Add(i)
				}
			}
		})
	}
}

// BenchmarkGenerationalListChurn replays a fixed add/remove script.
// Steady-state churn should not allocate once the free list is warm.
func BenchmarkGenerationalListChurn(b *testing.B) {
	ops := testutil.NewRNG(42).ChurnScript(10_000, 0.45)

	b.ReportAllocs()
	for b.Loop() {
		list := slotlist.NewGenerationalList[int](slotlist.WithInitialCapacity(len(ops)))
		handles := make([]slotlist.Handle, 0, len(ops))
		for _, op := range ops {
			switch op.Kind {
			case testutil.OpAdd:
				handles = append(handles, list.Add(op.Value))
			case testutil.OpRemove:
				i := op.Victim % len(handles)
				_ = list.Remove(handles[i])
				handles[i] = handles[len(handles)-1]
				handles = handles[:len(handles)-1]
			}
		}
	}
}

// BenchmarkIterate compares range-over-func iteration with explicit cursors
// on a half-empty container.
func BenchmarkIterate(b *testing.B) {
	const n = 10_000

	arr := slotlist.NewSlotArray[int](slotlist.WithInitialCapacity(n))
	list := slotlist.NewGenerationalList[int](slotlist.WithInitialCapacity(n))
	var handles []slotlist.Handle
	for i := range n {
		arr.Add(i)
		handles = append(handles, list.Add(i))
	}
	for i := 0; i < n; i += 2 {
		_ = arr.RemoveAt(i)
		_ = list.Remove(handles[i])
	}

	b.Run("SlotArray/Iterate", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			sum := 0
			for v := range arr.Iterate() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("SlotArray/Cursor", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			sum := 0
			c := arr.Cursor()
			for c.MoveNext() {
				sum += *c.Current()
			}
			c.Release()
			_ = sum
		}
	})

	b.Run("GenerationalList/Iterate", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			sum := 0
			for v := range list.Iterate() {
				sum += v
			}
			_ = sum
		}
	})

	b.Run("GenerationalList/Cursor", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			sum := 0
			c := list.Cursor()
			for c.MoveNext() {
				sum += c.Current()
			}
			c.Release()
			_ = sum
		}
	})
}

// BenchmarkGenerationalListGet measures handle validation plus lookup.
func BenchmarkGenerationalListGet(b *testing.B) {
	list := slotlist.NewGenerationalList[int]()
	handles := make([]slotlist.Handle, 1024)
	for i := range handles {
		handles[i] = list.Add(i)
	}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_, _ = list.Get(handles[i&1023])
		i++
	}
}
