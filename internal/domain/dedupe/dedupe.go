// Package dedupe tracks event IDs already admitted to a catalog so that the
// first occurrence of an ID wins across merged sources.
package dedupe

import (
	"context"
	"strings"
	"sync"
)

// Deduper records seen event IDs.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord forgets id so a later entry may claim it. Used when an
	// admitted entry is rejected after recording.
	Unrecord(ctx context.Context, id string)

	Size() int
}

// inMemoryDeduper implements Deduper with a map guarded by a mutex.
type inMemoryDeduper struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	foldCase bool
}

// NewInMemoryDeduper creates an empty deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{seen: make(map[string]struct{})}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *inMemoryDeduper) key(id string) string {
	id = strings.TrimSpace(id)
	if d.foldCase {
		id = strings.ToLower(id)
	}
	return id
}

// SeenAndRecord atomically checks if id was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	k := d.key(id)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[k]; ok {
		return true
	}
	d.seen[k] = struct{}{}
	return false
}

// Unrecord removes id from the seen set.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	k := d.key(id)
	d.mu.Lock()
	delete(d.seen, k)
	d.mu.Unlock()
}

// Size returns the number of recorded IDs.
func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
