package shareable

import (
	"fmt"
	"sync"
)

// Object is a shareable container for a value of arbitrary type.
//
// Values are published as immutable snapshots: Get hands out a pointer to
// the current snapshot, Set installs a brand-new one, and a snapshot is
// never modified once it has been handed out. Readers therefore work on
// stable data without holding any lock, and a snapshot stays valid for as
// long as its pointer is kept, no matter how many Sets happen after.
//
// Like Cell, an Object starts unshared and confined to one goroutine, and
// the first Dup promotes the lineage onto a common backing.
type Object[T any] struct {
	snapshot *T
	shared   *objectBacking[T]
}

// objectBacking tracks which snapshot is current for a promoted lineage.
// The mutex is held only to swap the pointer, never while a caller
// examines the snapshot itself.
type objectBacking[T any] struct {
	mu   sync.Mutex
	snap *T
}

func (b *objectBacking[T]) load() *T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

func (b *objectBacking[T]) store(s *T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = s
}

// NewObject creates an unshared Object holding value.
func NewObject[T any](value T) *Object[T] {
	return &Object[T]{snapshot: &value}
}

// Get returns the current snapshot. The snapshot is unaffected by any
// later Set on the lineage and must not be modified by the caller.
func (o *Object[T]) Get() *T {
	if o.shared == nil {
		return o.snapshot
	}
	return o.shared.load()
}

// Set replaces the current value with a new snapshot built from value.
// Snapshots returned by earlier Get calls keep their contents.
func (o *Object[T]) Set(value T) {
	if o.shared == nil {
		o.snapshot = &value
		return
	}
	o.shared.store(&value)
}

// Dup returns a second handle to the same value, promoting the lineage on
// first use. The ownership rule matches Cell.Dup: only the single owner of
// an unshared Object may call Dup, and the duplicate crosses goroutines
// through a synchronized transfer.
func (o *Object[T]) Dup() *Object[T] {
	if o.shared == nil {
		o.shared = &objectBacking[T]{snap: o.snapshot}
		o.snapshot = nil
	}
	return &Object[T]{shared: o.shared}
}

// IsShared reports whether the lineage has been promoted.
func (o *Object[T]) IsShared() bool {
	return o.shared != nil
}

// String implements fmt.Stringer by formatting the current value.
func (o *Object[T]) String() string {
	return fmt.Sprint(*o.Get())
}

// GoString implements fmt.GoStringer by formatting the current value.
func (o *Object[T]) GoString() string {
	return fmt.Sprintf("%#v", *o.Get())
}
