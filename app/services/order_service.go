package services

import (
	"context"
	"strings"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/apperr"
	"github.com/shashiranjanraj/shopadmin/pkg/collection"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
	"github.com/shashiranjanraj/shopadmin/pkg/validate"
)

const msgOrderNotFound = "Order not found"

// OrderService validates and applies order changes. Orders are never
// deleted.
type OrderService struct {
	base
	repo *repositories.OrderRepository
}

func NewOrderService(repo *repositories.OrderRepository, opts ...Option) *OrderService {
	return &OrderService{base: newBase("orders", opts), repo: repo}
}

// List returns one page of orders matching p.
func (s *OrderService) List(ctx context.Context, p query.Params) query.Result[models.Order] {
	return cachedSearch(ctx, &s.base, s.repo.Version(), p, s.repo.Search)
}

func (s *OrderService) Find(_ context.Context, id string) (models.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return models.Order{}, lookupErr(err, msgOrderNotFound, "Failed to fetch order")
	}
	return o, nil
}

// Create validates in, derives the total from the items, and stores a new
// order with the next ord-NNN id.
func (s *OrderService) Create(_ context.Context, in models.OrderInput) (models.Order, error) {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		return models.Order{}, apperr.MissingFields(errs)
	}

	items := collection.Map(in.Items, func(it models.OrderItemInput) models.OrderItem {
		return models.OrderItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price.Value(),
		}
	})
	status := in.Status
	if status == "" {
		status = models.OrderPending
	}
	now := s.stamp()

	o, err := s.repo.Create(func(id string) (models.Order, error) {
		return models.Order{
			ID:            id,
			CustomerName:  strings.TrimSpace(in.CustomerName),
			CustomerEmail: strings.TrimSpace(in.CustomerEmail),
			Items:         items,
			Total:         OrderTotal(items),
			Status:        status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}, nil
	})
	if err != nil {
		return models.Order{}, apperr.Internal("Failed to create order", err)
	}

	s.fire(event.OrderCreated, o.ID, o)
	return o, nil
}

// Update overwrites status, customerName and customerEmail when present.
func (s *OrderService) Update(_ context.Context, id string, patch models.OrderPatch) (models.Order, error) {
	now := s.stamp()

	o, err := s.repo.Update(id, func(cur models.Order) (models.Order, error) {
		if errs := checkOrderPatch(patch); validate.HasErrors(errs) {
			return cur, apperr.Validation("Invalid fields: "+strings.Join(apperr.FieldNames(errs), ", "), errs)
		}

		if patch.CustomerName != nil {
			cur.CustomerName = strings.TrimSpace(*patch.CustomerName)
		}
		if patch.CustomerEmail != nil {
			cur.CustomerEmail = strings.TrimSpace(*patch.CustomerEmail)
		}
		if patch.Status != nil {
			cur.Status = *patch.Status
		}
		cur.UpdatedAt = laterOf(now, cur.CreatedAt)
		return cur, nil
	})
	if err != nil {
		return models.Order{}, lookupErr(err, msgOrderNotFound, "Failed to update order")
	}

	s.fire(event.OrderUpdated, o.ID, o)
	return o, nil
}

func (s *OrderService) Count() int { return s.repo.Count() }

// OrderTotal is Σ price × quantity, rounded to cents.
func OrderTotal(items []models.OrderItem) float64 {
	return roundCents(collection.Sum(items, func(it models.OrderItem) float64 {
		return it.Price * float64(it.Quantity)
	}))
}

func checkOrderPatch(patch models.OrderPatch) map[string]string {
	errs := map[string]string{}
	if patch.CustomerName != nil && strings.TrimSpace(*patch.CustomerName) == "" {
		errs["customerName"] = "The customerName field is required."
	}
	if patch.CustomerEmail != nil && strings.TrimSpace(*patch.CustomerEmail) == "" {
		errs["customerEmail"] = "The customerEmail field is required."
	}
	if patch.Status != nil && !patch.Status.Valid() {
		errs["status"] = "The selected status is invalid."
	}
	return errs
}
