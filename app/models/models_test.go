package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/app/models"
)

func TestNumberDecoding(t *testing.T) {
	cases := []struct {
		body    string
		present bool
		ok      bool
		value   float64
	}{
		{`{}`, false, false, 0},
		{`{"price":null}`, false, false, 0},
		{`{"price":19.5}`, true, true, 19.5},
		{`{"price":"19.5"}`, true, true, 19.5},
		{`{"price":" 7 "}`, true, true, 7},
		{`{"price":"abc"}`, true, false, 0},
		{`{"price":"NaN"}`, true, false, 0},
		{`{"price":true}`, true, false, 0},
		{`{"price":[1]}`, true, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			var in models.ProductPatch
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))

			assert.Equal(t, tc.present, in.Price.Present())
			f, ok := in.Price.Float()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.value, f)
		})
	}
}

func TestNumberMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A models.Number `json:"a"`
		B models.Number `json:"b"`
	}{A: models.NewNumber(2.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2.5,"b":null}`, string(b))
}

func TestProductCloneIsDeep(t *testing.T) {
	p := models.Product{ID: "prod-001", Images: []string{"a"}}
	c := p.Clone()
	c.Images[0] = "b"

	assert.Equal(t, "a", p.Images[0])
	assert.Equal(t, "prod-001", c.Key())

	empty := models.Product{}.Clone()
	assert.NotNil(t, empty.Images)
}

func TestOrderJSONShape(t *testing.T) {
	o := models.Order{
		ID:            "ord-001",
		CustomerName:  "John Doe",
		CustomerEmail: "john.doe@example.com",
		Items:         []models.OrderItem{{ProductID: "prod-001", Name: "Wireless Headphones", Quantity: 1, Price: 79.99}},
		Total:         79.99,
		Status:        models.OrderProcessing,
		CreatedAt:     time.Date(2024, 1, 25, 9, 15, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 1, 25, 9, 15, 0, 0, time.UTC),
	}
	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id":"ord-001","customerName":"John Doe","customerEmail":"john.doe@example.com",
		"items":[{"productId":"prod-001","name":"Wireless Headphones","quantity":1,"price":79.99}],
		"total":79.99,"status":"processing",
		"createdAt":"2024-01-25T09:15:00Z","updatedAt":"2024-01-25T09:15:00Z"}`, string(b))

	clone := o.Clone()
	clone.Items[0].Quantity = 5
	assert.Equal(t, 1, o.Items[0].Quantity)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, models.ProductArchived.Valid())
	assert.False(t, models.ProductStatus("deleted").Valid())
	assert.True(t, models.OrderCancelled.Valid())
	assert.False(t, models.OrderStatus("").Valid())
}
