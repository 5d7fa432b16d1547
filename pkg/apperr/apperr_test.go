package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/shopadmin/pkg/apperr"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Validation("bad", nil), http.StatusBadRequest},
		{apperr.NotFound("Product not found", nil), http.StatusNotFound},
		{apperr.Internal("Failed to create product", errors.New("disk")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", apperr.NotFound("Order not found", nil)), http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, apperr.Status(tc.err), tc.err.Error())
	}
}

func TestMessageHidesUnclassifiedErrors(t *testing.T) {
	assert.Equal(t, "Internal Server Error", apperr.Message(errors.New("sql: secret detail")))
	assert.Equal(t, "Product not found", apperr.Message(apperr.NotFound("Product not found", nil)))
}

func TestMissingFieldsListsSortedNames(t *testing.T) {
	err := apperr.MissingFields(map[string]string{"price": "x", "name": "y"})

	assert.Equal(t, "Missing required fields: name, price", err.Message)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.False(t, apperr.Is(nil, apperr.KindValidation))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("root")
	err := apperr.Internal("Failed to update order", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "root")
}
