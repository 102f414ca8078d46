// Package conv provides safe integer type conversion utilities.
//
// Slot indices are plain ints inside the containers, while roaring bitmaps
// address 32-bit ids. Conversions here fail instead of silently truncating.
package conv
