// Package seeders provides the fixture records the stores start with.
//
// Fixtures are embedded JSON files under data/. Each loader returns fresh
// values on every call, so two stores seeded from the same fixtures never
// share state.
package seeders

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/shashiranjanraj/shopadmin/app/models"
)

//go:embed data/*.json
var fixtures embed.FS

// Products returns the catalogue fixtures in their defined order.
func Products() ([]models.Product, error) {
	var out []models.Product
	if err := load("data/products.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Orders returns the order fixtures in their defined order.
func Orders() ([]models.Order, error) {
	var out []models.Order
	if err := load("data/orders.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func load(name string, dest interface{}) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("seeder %q: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("seeder %q: %w", name, err)
	}
	return nil
}
