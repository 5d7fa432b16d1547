package ident_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/shopadmin/pkg/ident"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty", nil, "prod-001"},
		{"sequential", []string{"prod-001", "prod-002"}, "prod-003"},
		{"gap uses max", []string{"prod-001", "prod-007", "prod-003"}, "prod-008"},
		{"ignores other prefixes", []string{"ord-050", "prod-002"}, "prod-003"},
		{"ignores garbage", []string{"prod-abc", "prod-", "prod-004"}, "prod-005"},
		{"grows past padding", []string{"prod-999"}, "prod-1000"},
		{"ignores signed suffixes", []string{"prod-+5", "prod--7", "prod-002"}, "prod-003"},
		{"ignores unincrementable suffix", []string{"prod-" + strconv.Itoa(math.MaxInt), "prod-004"}, "prod-005"},
		{"ignores overflowing suffix", []string{"prod-99999999999999999999", "prod-001"}, "prod-002"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ident.Next("prod", tc.ids))
		})
	}
}

func TestSuffix(t *testing.T) {
	n, ok := ident.Suffix("ord", "ord-010")
	assert.True(t, ok)
	assert.Equal(t, 10, n)

	_, ok = ident.Suffix("ord", "prod-010")
	assert.False(t, ok)

	for _, id := range []string{"ord-+5", "ord--5", "ord- 5", "ord-5x"} {
		_, ok = ident.Suffix("ord", id)
		assert.False(t, ok, id)
	}
}
