package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/database/seeders"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
	"github.com/shashiranjanraj/shopadmin/pkg/store"
)

func productRepo(t *testing.T) *repositories.ProductRepository {
	t.Helper()
	seed, err := seeders.Products()
	require.NoError(t, err)
	return repositories.NewProductRepository(seed)
}

func orderRepo(t *testing.T) *repositories.OrderRepository {
	t.Helper()
	seed, err := seeders.Orders()
	require.NoError(t, err)
	return repositories.NewOrderRepository(seed)
}

func TestInactiveElectronicsMouse(t *testing.T) {
	res := productRepo(t).Search(query.Params{
		Search:  "mouse",
		Filters: map[string]string{"category": "Electronics", "status": "inactive"},
	})

	require.Equal(t, 1, res.Total)
	assert.Equal(t, "prod-004", res.Items[0].ID)
	assert.Equal(t, 1, res.TotalPages)
}

func TestPendingOrders(t *testing.T) {
	res := orderRepo(t).Search(query.Params{Filters: map[string]string{"status": "pending"}})

	require.Equal(t, 2, res.Total)
	assert.Equal(t, "ord-004", res.Items[0].ID)
	assert.Equal(t, "ord-009", res.Items[1].ID)
}

func TestOrderSearchMatchesIDOrCustomer(t *testing.T) {
	repo := orderRepo(t)

	byID := repo.Search(query.Params{Search: "ORD-007"})
	require.Equal(t, 1, byID.Total)
	assert.Equal(t, "David Miller", byID.Items[0].CustomerName)

	byName := repo.Search(query.Params{Search: "smith"})
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, "ord-002", byName.Items[0].ID)
}

func TestProductCreateAllocatesNextID(t *testing.T) {
	repo := productRepo(t)

	p, err := repo.Create(func(id string) (models.Product, error) {
		return models.Product{ID: id, Name: "X"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-011", p.ID)
	assert.Equal(t, 11, repo.Count())

	require.NoError(t, repo.Delete("prod-011"))
	require.NoError(t, repo.Delete("prod-003"))

	p, err = repo.Create(func(id string) (models.Product, error) {
		return models.Product{ID: id}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-011", p.ID)
}

func TestProductCreateAfterGap(t *testing.T) {
	repo := repositories.NewProductRepository([]models.Product{{ID: "prod-001"}, {ID: "prod-003"}})

	p, err := repo.Create(func(id string) (models.Product, error) {
		return models.Product{ID: id, Name: "X", Price: 10, Category: "Electronics"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "prod-004", p.ID)
}

func TestDeleteMissingProduct(t *testing.T) {
	err := productRepo(t).Delete("prod-999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestVersionTracksMutations(t *testing.T) {
	repo := orderRepo(t)
	v := repo.Version()

	_, err := repo.Update("ord-001", func(o models.Order) (models.Order, error) {
		o.Status = models.OrderShipped
		return o, nil
	})
	require.NoError(t, err)
	assert.Greater(t, repo.Version(), v)

	got, err := repo.FindByID("ord-001")
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, got.Status)
}
