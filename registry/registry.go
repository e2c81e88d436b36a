// Package registry maintains process-wide tables of named shareable
// values. A table never hands out the handle it stores: attaching takes a
// duplicate and every lookup mints another, so all users of a name join
// one promoted lineage.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/cespare/xxhash"
)

// ErrAttached is returned by Attach when the name is already taken.
var ErrAttached = errors.New("name already attached")

// Handle is the cell side of the table contract: any container whose Dup
// returns another handle of the same lineage. Both *shareable.Cell[V] and
// *shareable.Object[T] satisfy it.
type Handle[C any] interface {
	Dup() C
}

const numShards = 16

// Table maps names to shareable handles of one cell type. Access is
// sharded by name hash so unrelated names do not contend.
//
// The zero value is not usable; construct with New.
type Table[C Handle[C]] struct {
	shards [numShards]shard[C]
}

type shard[C Handle[C]] struct {
	mu    sync.RWMutex
	cells map[string]C
}

// New creates an empty Table.
func New[C Handle[C]]() *Table[C] {
	t := &Table[C]{}
	for i := range t.shards {
		t.shards[i].cells = make(map[string]C)
	}
	return t
}

func (t *Table[C]) shard(name string) *shard[C] {
	return &t.shards[xxhash.Sum64String(name)%numShards]
}

// Attach registers cell under name. The table stores a duplicate, which
// promotes the cell's lineage; the caller keeps using its own handle and
// observes every write made through the table's handles. Attach must be
// called by the cell's owner while the cell is still unshared, or with any
// handle of an already shared lineage.
//
// Fails with ErrAttached if the name is taken.
func (t *Table[C]) Attach(name string, cell C) error {
	s := t.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cells[name]; ok {
		return fmt.Errorf("attach %s: %w", name, ErrAttached)
	}
	s.cells[name] = cell.Dup()
	return nil
}

// Lookup mints a fresh handle onto the lineage attached under name.
func (t *Table[C]) Lookup(name string) (C, bool) {
	s := t.shard(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	cell, ok := s.cells[name]
	if !ok {
		var zero C
		return zero, false
	}
	// The stored handle is always already shared, so Dup only mints a
	// handle and is safe under the read lock.
	return cell.Dup(), true
}

// Detach removes name from the table. Handles already minted stay valid
// among themselves; re-attaching the name starts a fresh lineage.
func (t *Table[C]) Detach(name string) bool {
	s := t.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cells[name]; !ok {
		return false
	}
	delete(s.cells, name)
	return true
}

// Names returns all attached names, sorted.
func (t *Table[C]) Names() []string {
	names := make([]string, 0)
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.RLock()
		for name := range s.cells {
			names = append(names, name)
		}
		s.mu.RUnlock()
	}
	slices.Sort(names)
	return names
}

// Len returns the number of attached names.
func (t *Table[C]) Len() int {
	n := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.RLock()
		n += len(s.cells)
		s.mu.RUnlock()
	}
	return n
}
