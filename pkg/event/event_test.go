package event_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/shopadmin/pkg/event"
	"github.com/shashiranjanraj/shopadmin/pkg/workerpool"
)

func TestFireRunsListenersInOrder(t *testing.T) {
	bus := event.NewBus(nil)

	var got []string
	bus.Listen(event.ProductCreated, func(e event.Event) { got = append(got, "first:"+e.RecordID) })
	bus.Listen(event.ProductCreated, func(e event.Event) { got = append(got, "second:"+e.RecordID) })
	bus.Listen("*", func(e event.Event) { got = append(got, "any:"+e.Name) })
	bus.Listen(event.OrderCreated, func(event.Event) { got = append(got, "wrong") })

	bus.Fire(event.New(event.ProductCreated, "products", "prod-011", nil))

	assert.Equal(t, []string{"first:prod-011", "second:prod-011", "any:product.created"}, got)
}

func TestFireAsyncUsesPool(t *testing.T) {
	bus := event.NewBus(workerpool.New(2))

	var count atomic.Int64
	var wg sync.WaitGroup
	wg.Add(20)
	bus.Listen(event.OrderUpdated, func(event.Event) {
		defer wg.Done()
		count.Add(1)
	})

	for i := 0; i < 20; i++ {
		bus.FireAsync(event.New(event.OrderUpdated, "orders", "ord-001", nil))
	}
	wg.Wait()
	bus.Close()

	assert.Equal(t, int64(20), count.Load())
}

func TestFireAsyncAfterCloseRunsInline(t *testing.T) {
	bus := event.NewBus(workerpool.New(1))
	bus.Close()

	ran := false
	bus.Listen(event.ProductDeleted, func(event.Event) { ran = true })
	bus.FireAsync(event.New(event.ProductDeleted, "products", "prod-001", nil))

	assert.True(t, ran)
}
