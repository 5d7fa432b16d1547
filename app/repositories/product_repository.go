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

// ProductQuery searches by name and filters by category and status.
var ProductQuery = query.Spec[models.Product]{
	Search: func(p models.Product, needle string) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	},
	Filters: map[string]func(models.Product) string{
		"category": func(p models.Product) string { return p.Category },
		"status":   func(p models.Product) string { return string(p.Status) },
	},
}

// ProductRepository handles storage operations for Product.
type ProductRepository struct {
	store *store.Memory[models.Product]
}

func NewProductRepository(seed []models.Product) *ProductRepository {
	return &ProductRepository{store: store.NewMemory("products", seed)}
}

// Search runs a list query over a snapshot of the catalogue.
func (r *ProductRepository) Search(p query.Params) query.Result[models.Product] {
	defer metrics.ObserveQuery("products", time.Now())
	return query.Run(r.store.Snapshot(), ProductQuery, p)
}

// FindByID looks up a product by id.
func (r *ProductRepository) FindByID(id string) (models.Product, error) {
	return r.store.Find(id)
}

// Create allocates the next prod-NNN id and stores the product returned by
// build, all under the store's write lock.
func (r *ProductRepository) Create(build func(id string) (models.Product, error)) (models.Product, error) {
	return r.store.Insert(func(keys []string) (models.Product, error) {
		return build(ident.Next(models.ProductIDPrefix, keys))
	})
}

// Update applies fn to a copy of the stored product and saves the result.
func (r *ProductRepository) Update(id string, fn func(models.Product) (models.Product, error)) (models.Product, error) {
	return r.store.Update(id, fn)
}

// Delete permanently removes a product.
func (r *ProductRepository) Delete(id string) error {
	return r.store.Delete(id)
}

func (r *ProductRepository) Count() int { return r.store.Len() }

// Version changes whenever the catalogue changes.
func (r *ProductRepository) Version() uint64 { return r.store.Version() }
