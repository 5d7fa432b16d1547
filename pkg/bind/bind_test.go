package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/pkg/bind"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"lamp","count":3,"extra":true}`))

	var p payload
	require.NoError(t, bind.Decode(r, &p))
	assert.Equal(t, "lamp", p.Name)
	assert.Equal(t, 3, p.Count)
}

func TestDecodeMalformedBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

	var p payload
	err := bind.Decode(r, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecodeEmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	var p payload
	assert.ErrorIs(t, bind.Decode(r, &p), bind.ErrEmptyBody)
}
