package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// OpKind selects what a churn step does.
type OpKind uint8

const (
	// OpAdd adds Op.Value to the container.
	OpAdd OpKind = iota
	// OpRemove removes one live item, chosen by Op.Victim.
	OpRemove
)

func (k OpKind) String() string {
	if k == OpRemove {
		return "remove"
	}
	return "add"
}

// Op is one step of a churn script.
type Op struct {
	Kind  OpKind
	Value int
	// Victim picks the item to remove: the caller takes it modulo the number
	// of live items it tracks, so scripts stay valid for any container.
	Victim int
}

// ChurnScript generates n add/remove steps. removeRatio is the probability
// that a step removes an item (clamped to [0, 1]); a remove drawn while
// nothing is live is turned into an add. Values are unique and increasing,
// which makes lost or duplicated items easy to spot.
func (r *RNG) ChurnScript(n int, removeRatio float64) []Op {
	removeRatio = min(max(removeRatio, 0), 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	live, next := 0, 0
	for range n {
		if live > 0 && r.rand.Float64() < removeRatio {
			ops = append(ops, Op{Kind: OpRemove, Victim: r.rand.Intn(live)})
			live--
			continue
		}
		ops = append(ops, Op{Kind: OpAdd, Value: next})
		next++
		live++
	}
	return ops
}

// Shuffled returns a permutation of [0, n).
func (r *RNG) Shuffled(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}
