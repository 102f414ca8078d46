// Package container implements the growable backing storage shared by the
// slot containers.
//
// Buffer grows by a caller-chosen fixed increment, or doubles when no
// increment is given. Slots are never released; callers recycle them through
// their own free lists.
package container
