package models

import "time"

// ProductStatus is the catalogue visibility of a product.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductArchived ProductStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductArchived:
		return true
	}
	return false
}

// ProductIDPrefix is the prefix of every product id ("prod-001").
const ProductIDPrefix = "prod"

// Product represents a product in the catalogue.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Status      ProductStatus `json:"status"`
	Images      []string      `json:"images"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (p Product) Key() string { return p.ID }

// Clone returns a deep copy. Images is never nil on the copy.
func (p Product) Clone() Product {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	p.Images = images
	return p
}

// ProductInput is the body of a create request.
type ProductInput struct {
	Name        string        `json:"name"        validate:"required"`
	Price       Number        `json:"price"       validate:"required,gt=0"`
	Description string        `json:"description"`
	Category    string        `json:"category"    validate:"required"`
	Status      ProductStatus `json:"status"      validate:"nullable,in=active,inactive,archived"`
	Images      []string      `json:"images"`
}

// ProductPatch is the body of an update request. A nil field (or an unset
// Price) leaves the stored value alone.
type ProductPatch struct {
	Name        *string        `json:"name"`
	Price       Number         `json:"price"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	Status      *ProductStatus `json:"status"`
	Images      *[]string      `json:"images"`
}
