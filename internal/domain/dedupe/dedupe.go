// Package dedupe guards attendance submissions against double marking.
package dedupe

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/lineout/internal/domain/dates"
)

// Deduper remembers which (day, player) pairs were already submitted.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets key so the submission can be retried after a failed
	// write.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// Key builds the submission key for a player on a calendar day.
func Key(day time.Time, name string) string {
	return dates.Format(dates.Day(day)) + "|" + strings.ToLower(strings.TrimSpace(name))
}

// memoryDeduper keeps keys in insertion order and evicts the oldest once
// maxSize is reached. maxSize <= 0 means unbounded.
type memoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]*list.Element
	order   *list.List
	maxSize int
	size    atomic.Int64
}

// NewInMemoryDeduper creates a deduper with the given options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &memoryDeduper{
		maxSize: 4096,
		seen:    make(map[string]*list.Element),
		order:   list.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *memoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	if d.maxSize > 0 && d.order.Len() >= d.maxSize {
		d.evictOldest()
	}
	d.seen[key] = d.order.PushBack(key)
	d.size.Add(1)
	return false
}

func (d *memoryDeduper) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.seen[key]; ok {
		d.order.Remove(el)
		delete(d.seen, key)
		d.size.Add(-1)
	}
}

// evictOldest must be called with d.mu held.
func (d *memoryDeduper) evictOldest() {
	front := d.order.Front()
	if front == nil {
		return
	}
	d.order.Remove(front)
	delete(d.seen, front.Value.(string))
	d.size.Add(-1)
}

func (d *memoryDeduper) Size() int64 {
	return d.size.Load()
}
