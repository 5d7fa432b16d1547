// Package event provides a synchronous/async domain event dispatcher.
//
//	bus := event.NewBus(workerpool.New(4))
//	bus.Listen(event.ProductCreated, func(e event.Event) { ... })
//	bus.FireAsync(event.New(event.ProductCreated, "products", p.ID, p))
package event

import (
	"sync"
	"time"

	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
	"github.com/shashiranjanraj/shopadmin/pkg/workerpool"
)

// Event names fired by the mutation services.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
	OrderCreated   = "order.created"
	OrderUpdated   = "order.updated"
)

// Event describes one successful mutation.
type Event struct {
	Name     string
	Entity   string
	RecordID string
	At       time.Time
	// Record is a copy of the record after the mutation; nil for deletes.
	Record any
}

// New stamps an event with the current UTC time.
func New(name, entity, recordID string, record any) Event {
	return Event{Name: name, Entity: entity, RecordID: recordID, At: time.Now().UTC(), Record: record}
}

// Handler receives an event.
type Handler func(Event)

// Bus routes events to listeners. The zero value is not usable; call NewBus.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wildcard []Handler
	pool     *workerpool.Pool
}

// NewBus creates a Bus. FireAsync runs handlers on pool; with a nil pool it
// behaves like Fire.
func NewBus(pool *workerpool.Pool) *Bus {
	return &Bus{handlers: map[string][]Handler{}, pool: pool}
}

// Listen registers a handler for the given event name. The name "*"
// receives every event.
func (b *Bus) Listen(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if name == "*" {
		b.wildcard = append(b.wildcard, h)
		return
	}
	b.handlers[name] = append(b.handlers[name], h)
}

// Fire dispatches e synchronously to every listener in registration order.
func (b *Bus) Fire(e Event) {
	metrics.EventsFired.WithLabelValues(e.Name).Inc()
	for _, h := range b.listeners(e.Name) {
		h(e)
	}
}

// FireAsync hands each listener to the worker pool and returns. When the
// pool is full the listener runs inline, so events are never dropped.
func (b *Bus) FireAsync(e Event) {
	if b.pool == nil {
		b.Fire(e)
		return
	}

	metrics.EventsFired.WithLabelValues(e.Name).Inc()
	for _, h := range b.listeners(e.Name) {
		h := h
		if err := b.pool.Submit(func() { h(e) }); err != nil {
			h(e)
		}
	}
}

// Close waits for queued async listeners to finish.
func (b *Bus) Close() {
	if b.pool != nil {
		b.pool.Shutdown()
	}
}

func (b *Bus) listeners(name string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	hs := make([]Handler, 0, len(b.handlers[name])+len(b.wildcard))
	hs = append(hs, b.handlers[name]...)
	hs = append(hs, b.wildcard...)
	return hs
}
