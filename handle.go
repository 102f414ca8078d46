package slotlist

import "fmt"

// Handle identifies an item stored in a GenerationalList. It combines the
// slot index with the slot's version at the time the item was added, so a
// handle to a removed item never matches the slot's later occupants.
type Handle struct {
	// Index is the recyclable slot position.
	Index int
	// Version is the generation of the slot the handle was issued for.
	Version uint32
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("%d@v%d", h.Index, h.Version)
}

// live reports whether version belongs to an occupied slot. Versions start at
// zero and are bumped once on removal and once on reuse, so occupied slots
// always carry an even version.
func live(version uint32) bool {
	return version&1 == 0
}
