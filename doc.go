// Package slotlist provides index-addressed containers that recycle freed
// slots instead of shrinking, as building blocks for entity stores and
// object pools.
//
// Two containers are offered:
//
//   - SlotArray hands out raw int indices. Removed slots are marked and
//     reused oldest-first. Indices carry no version, so callers probe with
//     Exists before trusting an index they kept around.
//   - GenerationalList hands out Handle values (index + version). Removing
//     an item bumps its slot's version, so stale handles are rejected even
//     after the slot was reused.
//
// # Quick Start
//
//	arr := slotlist.NewSlotArray[Particle](slotlist.WithGrowIncrement(256))
//	i := arr.Add(Particle{X: 1})
//	p, _ := arr.Get(i)
//	p.X++                 // updates the stored item
//	_ = arr.RemoveAt(i)   // i is now free for reuse
//
//	list := slotlist.NewGenerationalList[*Enemy]()
//	h := list.Add(&Enemy{HP: 10})
//	_ = list.Remove(h)
//	list.Contains(h)      // false, forever
//
// # Iteration
//
// Both containers expose range-over-func iterators and explicit cursors:
//
//	for item := range list.Iterate() { ... }
//	for h, item := range list.All() { ... }
//
//	c := arr.Cursor()
//	for c.MoveNext() {
//	    c.Current().Age++
//	}
//	c.Release() // hand the cursor back for reuse
//
// Traversals read the container as they go. Adding or removing items while
// a traversal is running gives unspecified results.
//
// # Growth
//
// A SlotArray grows by a fixed number of slots (DefaultGrowIncrement unless
// WithGrowIncrement says otherwise) rather than doubling. A GenerationalList doubles by
// default and switches to the fixed step when WithGrowIncrement is given.
//
// # Errors
//
// Failed lookups and removals return errors wrapping ErrOutOfRange,
// ErrRemoved, ErrInvalidHandle, ErrAlreadyRemoved or ErrNotFound. These
// signal caller bugs; nothing is retried and no default value is returned.
//
// # Concurrency
//
// Containers are not safe for concurrent use. Guard a shared container with
// external synchronisation.
package slotlist
