// Package queue provides the FIFO free list used to recycle container slots.
package queue

// minCapacity is the ring size allocated on first Push.
const minCapacity = 8

// FIFO is a first-in first-out queue of slot indices backed by a ring buffer.
// Optimized: value-based storage, no allocation while the ring has room.
//
// The zero value is an empty queue ready to use.
type FIFO struct {
	ring []int
	head int // position of the oldest element
	size int // number of queued elements
}

// Len returns the number of queued indices.
func (q *FIFO) Len() int { return q.size }

// Push appends v to the back of the queue.
func (q *FIFO) Push(v int) {
	if q.size == len(q.ring) {
		q.grow()
	}
	q.ring[(q.head+q.size)%len(q.ring)] = v
	q.size++
}

// Pop removes and returns the oldest index.
// It returns false if the queue is empty.
func (q *FIFO) Pop() (int, bool) {
	if q.size == 0 {
		return 0, false
	}
	v := q.ring[q.head]
	q.head = (q.head + 1) % len(q.ring)
	q.size--
	if q.size == 0 {
		q.head = 0
	}
	return v, true
}

// grow doubles the ring and unwraps the queued elements to the front.
func (q *FIFO) grow() {
	ring := make([]int, max(2*len(q.ring), minCapacity))
	n := copy(ring, q.ring[q.head:])
	copy(ring[n:], q.ring[:q.head])
	q.ring = ring
	q.head = 0
}
