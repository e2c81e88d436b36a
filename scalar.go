package shareable

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Cell is a shareable container for a fixed-width scalar value.
//
// A new Cell is unshared: it owns its value directly, costs nothing to
// read or write, and must stay confined to a single goroutine. Dup
// promotes the cell, after which every handle of the lineage goes through
// one shared backing and may be used from any goroutine.
//
// The shared backing guarantees that no read or write is torn, nothing
// more. A write made on one goroutine is only guaranteed visible to a read
// on another after some synchronization point between the two, such as a
// channel handoff.
type Cell[V Scalar] struct {
	value  V
	shared *scalarBacking[V]
}

// scalarBacking is the storage common to every handle of a promoted
// lineage. Exactly one is allocated per lineage, on first duplication.
//
// fits is fixed at construction from the platform word width. When V fits
// the native word the value lives in word as its raw bit pattern and is
// accessed atomically; otherwise it lives in val under mu.
type scalarBacking[V Scalar] struct {
	fits bool
	word atomic.Uintptr

	mu  sync.Mutex
	val V
}

func newScalarBacking[V Scalar](v V) *scalarBacking[V] {
	b := &scalarBacking[V]{fits: fitsWord[V]()}
	b.store(v)
	return b
}

func (b *scalarBacking[V]) load() V {
	if b.fits {
		return fromWord[V](b.word.Load())
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.val
}

func (b *scalarBacking[V]) store(v V) {
	if b.fits {
		b.word.Store(toWord(v))
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.val = v
}

// New creates an unshared Cell holding value.
func New[V Scalar](value V) *Cell[V] {
	return &Cell[V]{value: value}
}

// Get returns the current value.
func (c *Cell[V]) Get() V {
	if c.shared == nil {
		return c.value
	}
	return c.shared.load()
}

// Set replaces the current value. On a shared lineage the write lands in
// the common backing and is observed by every handle.
func (c *Cell[V]) Set(value V) {
	if c.shared == nil {
		c.value = value
		return
	}
	c.shared.store(value)
}

// Dup returns a second handle to the same value. The first Dup of a
// lineage promotes it: the value moves into a backing referenced by both
// the receiver and the new handle. Later Dup calls, on any handle, only
// mint more handles onto that same backing.
//
// An unshared cell has a single owner, and only that owner may call Dup.
// Handing the duplicate to another goroutine must itself be a synchronized
// transfer, such as a channel send. Once shared, Dup is safe to call from
// any goroutine.
func (c *Cell[V]) Dup() *Cell[V] {
	if c.shared == nil {
		c.shared = newScalarBacking(c.value)
	}
	return &Cell[V]{shared: c.shared}
}

// IsShared reports whether the lineage has been promoted.
func (c *Cell[V]) IsShared() bool {
	return c.shared != nil
}

// String implements fmt.Stringer by formatting the current value.
func (c *Cell[V]) String() string {
	return fmt.Sprint(c.Get())
}

// GoString implements fmt.GoStringer by formatting the current value.
func (c *Cell[V]) GoString() string {
	return fmt.Sprintf("%#v", c.Get())
}
