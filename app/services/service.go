package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/shopadmin/pkg/apperr"
	"github.com/shashiranjanraj/shopadmin/pkg/cache"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
	"github.com/shashiranjanraj/shopadmin/pkg/logger"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
	"github.com/shashiranjanraj/shopadmin/pkg/store"
)

// Option configures a mutation service.
type Option func(*base)

// WithEvents fires a domain event after every successful mutation.
func WithEvents(bus *event.Bus) Option {
	return func(b *base) { b.bus = bus }
}

// WithCache caches list results for ttl. Entries are keyed by the store
// version, so a mutation makes every older entry unreachable.
func WithCache(c cache.Cacher, ttl time.Duration) Option {
	return func(b *base) {
		b.cache = c
		b.ttl = ttl
	}
}

// WithClock replaces time.Now for createdAt/updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// base carries what the product and order services share.
type base struct {
	entity string
	// scope keeps two processes sharing one Redis from reading each
	// other's lists; their stores diverge after the first write.
	scope string
	bus   *event.Bus
	cache cache.Cacher
	ttl   time.Duration
	now   func() time.Time
}

func newBase(entity string, opts []Option) base {
	b := base{entity: entity, scope: uuid.NewString(), now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) stamp() time.Time {
	return b.now().UTC()
}

func (b *base) fire(name, id string, record any) {
	if b.bus == nil {
		return
	}
	b.bus.FireAsync(event.New(name, b.entity, id, record))
}

func (b *base) cacheKey(version uint64, p query.Params) string {
	return fmt.Sprintf("%s:%s:v%d:%s", b.entity, b.scope, version, p.Key())
}

// cachedSearch serves p from the cache when possible, otherwise runs search
// and stores the result. Cache failures only cost a recomputation.
func cachedSearch[T any](ctx context.Context, b *base, version uint64, p query.Params, search func(query.Params) query.Result[T]) query.Result[T] {
	p = p.Normalize()
	if b.cache == nil {
		return search(p)
	}

	key := b.cacheKey(version, p)
	var res query.Result[T]
	if b.cache.Get(ctx, key, &res) {
		if res.Items == nil {
			res.Items = []T{}
		}
		return res
	}

	res = search(p)
	if err := b.cache.Set(ctx, key, res, b.ttl); err != nil {
		logger.WithCtx(ctx).Warn("list cache write failed", "entity", b.entity, "error", err)
	}
	return res
}

// lookupErr maps a store error to the taxonomy.
func lookupErr(err error, notFound, internal string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(notFound, err)
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(internal, err)
}

// laterOf keeps updatedAt from ever preceding createdAt.
func laterOf(now, createdAt time.Time) time.Time {
	if now.Before(createdAt) {
		return createdAt
	}
	return now
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
