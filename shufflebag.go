// Package shufflebag contains a generic "shuffle bag" container that hands
// back previously added items in random order, making sure that every item
// (duplicates included) comes back exactly once per cycle before any item can
// repeat. Once a cycle is drained, a new one starts automatically.
//
// Weighting works purely through duplication: adding the same value three
// times gives it three tickets in every cycle. This makes the bag a good fit
// for things like loot tables, audio clip variety, and NPC behavior
// selection, where you want randomness without short-term repeats.
package shufflebag

import (
	"errors"
	"sync"
)

// ErrEmptyBag is returned by NextItem when the bag has never had any items
// added to it. Items are never removed from a bag, so this can only happen
// before the first call to Add.
var ErrEmptyBag = errors.New("shuffle bag has no items")

// Bag is a randomized container of items of type T. All items live in a
// single backing slice; the portion at indices [0, cursor] is the pool of
// items not yet drawn this cycle, while everything past the cursor has
// already been handed out. Drawing swaps the chosen item past the cursor and
// shrinks the pool by one.
//
// A Bag is safe for use from multiple goroutines. It must be created with
// New, NewSeeded, or NewWithSource.
type Bag[T any] struct {
	items  []T
	cursor int
	rng    Source
	mtx    *sync.Mutex
}

// New creates an empty bag backed by a time-seeded random source. Draws will
// not be reproducible across runs; use NewSeeded or NewWithSource when they
// need to be.
func New[T any]() *Bag[T] {
	return NewWithSource[T](newDefaultSource())
}

// NewSeeded creates an empty bag whose draw order is fully determined by the
// provided seed and the sequence of Add/NextItem calls made against it.
func NewSeeded[T any](rngSeed int64) *Bag[T] {
	return NewWithSource[T](NewSource(rngSeed))
}

// NewWithSource creates an empty bag that picks items with the provided
// source. The bag takes ownership of the source; it must not be shared with
// another bag or used concurrently outside of it.
func NewWithSource[T any](src Source) *Bag[T] {
	return &Bag[T]{
		items:  nil,
		cursor: -1,
		rng:    src,
		mtx:    &sync.Mutex{},
	}
}

// Add places one ticket for item into the bag. Adding the same value more
// than once weights it proportionally in every future cycle.
//
// Every call to Add re-opens the full backing collection as the current
// pool, not just the new item: items already drawn this cycle become
// drawable again. Interleaving Add with NextItem therefore restarts cycle
// coverage each time. Callers that need a clean N-item cycle should finish
// adding before they start drawing.
func (b *Bag[T]) Add(item T) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	b.items = append(b.items, item)
	b.cursor = len(b.items) - 1
}

// NextItem draws one item from the bag. Within a cycle, every ticket in the
// bag at the start of that cycle is returned exactly once; when the pool
// runs out, the next call starts a fresh cycle over the whole collection.
// Fails with ErrEmptyBag if Add has never been called.
func (b *Bag[T]) NextItem() (T, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if len(b.items) == 0 {
		var zero T
		return zero, ErrEmptyBag
	}

	// Pool is exhausted (or the bag only just got its first item). Reset
	// the pool to span the whole collection and hand back whatever sits at
	// index 0, deliberately without swapping it anywhere. The item at index
	// 0 is always the first draw of a new cycle.
	if b.cursor < 1 {
		b.cursor = len(b.items) - 1
		return b.items[0], nil
	}

	// The upper bound is exclusive, so the slot at b.cursor itself is never
	// the randomly chosen one. It still gets returned every cycle: either a
	// draw swaps it down into range first, or it ends the cycle sitting at
	// index 0 for the restart branch above.
	randomIndex := b.rng.Intn(b.cursor)
	result := b.items[randomIndex]
	b.items[b.cursor], b.items[randomIndex] = b.items[randomIndex], b.items[b.cursor]
	b.cursor--
	return result, nil
}
