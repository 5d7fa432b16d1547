package repositories

import (
	"strings"
	"time"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/ident"
	"github.com/shashiranjanraj/shopadmin/pkg/metrics"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
	"github.com/shashiranjanraj/shopadmin/pkg/store"
)

// OrderQuery searches by customer name or order id and filters by status.
var OrderQuery = query.Spec[models.Order]{
	Search: func(o models.Order, needle string) bool {
		return strings.Contains(strings.ToLower(o.CustomerName), needle) ||
			strings.Contains(strings.ToLower(o.ID), needle)
	},
	Filters: map[string]func(models.Order) string{
		"status": func(o models.Order) string { return string(o.Status) },
	},
}

// OrderRepository handles storage operations for Order. Orders are never
// deleted.
type OrderRepository struct {
	store *store.Memory[models.Order]
}

func NewOrderRepository(seed []models.Order) *OrderRepository {
	return &OrderRepository{store: store.NewMemory("orders", seed)}
}

func (r *OrderRepository) Search(p query.Params) query.Result[models.Order] {
	defer metrics.ObserveQuery("orders", time.Now())
	return query.Run(r.store.Snapshot(), OrderQuery, p)
}

func (r *OrderRepository) FindByID(id string) (models.Order, error) {
	return r.store.Find(id)
}

// Create allocates the next ord-NNN id and stores the order returned by build.
func (r *OrderRepository) Create(build func(id string) (models.Order, error)) (models.Order, error) {
	return r.store.Insert(func(keys []string) (models.Order, error) {
		return build(ident.Next(models.OrderIDPrefix, keys))
	})
}

func (r *OrderRepository) Update(id string, fn func(models.Order) (models.Order, error)) (models.Order, error) {
	return r.store.Update(id, fn)
}

func (r *OrderRepository) Count() int { return r.store.Len() }

func (r *OrderRepository) Version() uint64 { return r.store.Version() }
