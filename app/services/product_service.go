package services

import (
	"context"
	"strings"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/pkg/apperr"
	"github.com/shashiranjanraj/shopadmin/pkg/event"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
	"github.com/shashiranjanraj/shopadmin/pkg/validate"
)

const msgProductNotFound = "Product not found"

// ProductService validates and applies catalogue changes.
type ProductService struct {
	base
	repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository, opts ...Option) *ProductService {
	return &ProductService{base: newBase("products", opts), repo: repo}
}

// List returns one page of products matching p.
func (s *ProductService) List(ctx context.Context, p query.Params) query.Result[models.Product] {
	return cachedSearch(ctx, &s.base, s.repo.Version(), p, s.repo.Search)
}

func (s *ProductService) Find(_ context.Context, id string) (models.Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return models.Product{}, lookupErr(err, msgProductNotFound, "Failed to fetch product")
	}
	return p, nil
}

// Create validates in and stores a new product with the next prod-NNN id.
func (s *ProductService) Create(_ context.Context, in models.ProductInput) (models.Product, error) {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		return models.Product{}, apperr.MissingFields(errs)
	}

	now := s.stamp()
	status := in.Status
	if status == "" {
		status = models.ProductActive
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	p, err := s.repo.Create(func(id string) (models.Product, error) {
		return models.Product{
			ID:          id,
			Name:        strings.TrimSpace(in.Name),
			Price:       in.Price.Value(),
			Description: in.Description,
			Category:    strings.TrimSpace(in.Category),
			Status:      status,
			Images:      images,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil
	})
	if err != nil {
		return models.Product{}, apperr.Internal("Failed to create product", err)
	}

	s.fire(event.ProductCreated, p.ID, p)
	return p, nil
}

// Update overwrites the fields present in patch. A missing product is
// reported before the patch is validated.
func (s *ProductService) Update(_ context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	now := s.stamp()

	p, err := s.repo.Update(id, func(cur models.Product) (models.Product, error) {
		if errs := checkProductPatch(patch); validate.HasErrors(errs) {
			return cur, apperr.Validation("Invalid fields: "+strings.Join(apperr.FieldNames(errs), ", "), errs)
		}

		if patch.Name != nil {
			cur.Name = strings.TrimSpace(*patch.Name)
		}
		if v, ok := patch.Price.Float(); ok {
			cur.Price = v
		}
		if patch.Description != nil {
			cur.Description = *patch.Description
		}
		if patch.Category != nil {
			cur.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.Status != nil {
			cur.Status = *patch.Status
		}
		if patch.Images != nil {
			cur.Images = *patch.Images
			if cur.Images == nil {
				cur.Images = []string{}
			}
		}
		cur.UpdatedAt = laterOf(now, cur.CreatedAt)
		return cur, nil
	})
	if err != nil {
		return models.Product{}, lookupErr(err, msgProductNotFound, "Failed to update product")
	}

	s.fire(event.ProductUpdated, p.ID, p)
	return p, nil
}

// Delete permanently removes a product.
func (s *ProductService) Delete(_ context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, msgProductNotFound, "Failed to delete product")
	}
	s.fire(event.ProductDeleted, id, nil)
	return nil
}

func (s *ProductService) Count() int { return s.repo.Count() }

func checkProductPatch(patch models.ProductPatch) map[string]string {
	errs := map[string]string{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs["name"] = "The name field is required."
	}
	if patch.Price.Present() {
		if v, ok := patch.Price.Float(); !ok {
			errs["price"] = "The price field must be a number."
		} else if v < 0 {
			errs["price"] = "The price must be at least 0."
		}
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		errs["category"] = "The category field is required."
	}
	if patch.Status != nil && !patch.Status.Valid() {
		errs["status"] = "The selected status is invalid."
	}
	return errs
}
