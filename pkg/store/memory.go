// Package store holds the in-process record collections.
//
// A Memory store owns every record it holds. Readers always receive deep
// copies, so nothing outside the store can alter stored state. Mutations are
// serialised by a single writer lock while reads run concurrently.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/shopadmin/pkg/collection"
	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
)

// ErrNotFound is returned when no record has the requested key.
var ErrNotFound = errors.New("store: record not found")

// Record is implemented by every type the store can hold.
type Record[T any] interface {
	Key() string
	Clone() T
}

// Memory is an ordered, mutex-guarded collection of records. Insertion order
// is preserved and is the order Snapshot returns.
type Memory[T Record[T]] struct {
	name    string
	mu      sync.RWMutex
	records []T
	version uint64
}

// NewMemory creates a store named after the entity it holds (used as a
// metrics label) and seeds it with copies of seed.
func NewMemory[T Record[T]](name string, seed []T) *Memory[T] {
	records := make([]T, len(seed))
	for i, r := range seed {
		records[i] = r.Clone()
	}
	metrics.StoreRecords.WithLabelValues(name).Set(float64(len(records)))
	return &Memory[T]{name: name, records: records}
}

// Name returns the entity name the store was created with.
func (m *Memory[T]) Name() string { return m.name }

// Snapshot returns deep copies of every record in insertion order.
func (m *Memory[T]) Snapshot() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, len(m.records))
	for i, r := range m.records {
		out[i] = r.Clone()
	}
	return out
}

// Find returns a copy of the record with the given key.
func (m *Memory[T]) Find(key string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(key); i >= 0 {
		return m.records[i].Clone(), nil
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", m.name, key, ErrNotFound)
}

// Insert appends the record produced by build. build runs under the write
// lock and receives the keys currently held, so key allocation and append
// are one atomic step. If build fails nothing is stored.
func (m *Memory[T]) Insert(build func(keys []string) (T, error)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := collection.Map(m.records, func(r T) string { return r.Key() })
	rec, err := build(keys)
	if err != nil {
		metrics.RecordMutation(m.name, "insert", err, len(m.records))
		var zero T
		return zero, err
	}

	m.records = append(m.records, rec.Clone())
	m.version++
	metrics.RecordMutation(m.name, "insert", nil, len(m.records))
	return rec.Clone(), nil
}

// Update replaces the record with the given key by the result of apply.
// apply receives a copy; returning an error leaves the store unchanged.
func (m *Memory[T]) Update(key string, apply func(current T) (T, error)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	i := m.indexOf(key)
	if i < 0 {
		err := fmt.Errorf("%s %q: %w", m.name, key, ErrNotFound)
		metrics.RecordMutation(m.name, "update", err, len(m.records))
		return zero, err
	}

	next, err := apply(m.records[i].Clone())
	if err != nil {
		metrics.RecordMutation(m.name, "update", err, len(m.records))
		return zero, err
	}
	if next.Key() != key {
		err := fmt.Errorf("%s %q: update may not change the key", m.name, key)
		metrics.RecordMutation(m.name, "update", err, len(m.records))
		return zero, err
	}

	m.records[i] = next.Clone()
	m.version++
	metrics.RecordMutation(m.name, "update", nil, len(m.records))
	return next.Clone(), nil
}

// Delete removes the record with the given key, keeping the order of the rest.
func (m *Memory[T]) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(key)
	if i < 0 {
		err := fmt.Errorf("%s %q: %w", m.name, key, ErrNotFound)
		metrics.RecordMutation(m.name, "delete", err, len(m.records))
		return err
	}

	m.records = append(m.records[:i:i], m.records[i+1:]...)
	m.version++
	metrics.RecordMutation(m.name, "delete", nil, len(m.records))
	return nil
}

// Len returns the number of records held.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Version increases by one on every successful mutation.
func (m *Memory[T]) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// indexOf must be called with mu held.
func (m *Memory[T]) indexOf(key string) int {
	return collection.IndexOf(m.records, func(r T) bool { return r.Key() == key })
}
