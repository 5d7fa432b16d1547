// Package query implements search, exact-match filtering and pagination over
// a slice of records.
//
//	spec := query.Spec[models.Product]{
//	    Search:  func(p models.Product, needle string) bool { return strings.Contains(strings.ToLower(p.Name), needle) },
//	    Filters: map[string]func(models.Product) string{"category": func(p models.Product) string { return p.Category }},
//	}
//	res := query.Run(products, spec, query.ParamsFromValues(r.URL.Query(), "category"))
package query

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/shopadmin/pkg/collection"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params describes one list request. Zero or negative Page and PageSize are
// replaced by their defaults when the query runs.
type Params struct {
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
}

// Result is one page of matches. The JSON names are the ones the admin
// client consumes.
type Result[T any] struct {
	Items      []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Spec tells Run how to search and filter one record type. Search receives
// the lower-cased needle. Filters maps a filter name to the field it compares
// against.
type Spec[T any] struct {
	Search  func(rec T, needle string) bool
	Filters map[string]func(T) string
}

// FilterKeys lists the filter names the spec understands, sorted.
func (s Spec[T]) FilterKeys() []string {
	keys := make([]string, 0, len(s.Filters))
	for k := range s.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Run applies search, then filters, then pagination. It never fails: unknown
// filter names and empty values are ignored, and a page past the end is
// simply empty.
func Run[T any](records []T, spec Spec[T], p Params) Result[T] {
	p = p.Normalize()

	needle := strings.ToLower(strings.TrimSpace(p.Search))
	matched := collection.Filter(records, func(rec T) bool {
		if needle != "" && spec.Search != nil && !spec.Search(rec, needle) {
			return false
		}
		for name, want := range p.Filters {
			field, ok := spec.Filters[name]
			if !ok || want == "" {
				continue
			}
			if field(rec) != want {
				return false
			}
		}
		return true
	})

	total := len(matched)
	return Result[T]{
		Items:      collection.Paginate(matched, p.Page, p.PageSize),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(p.PageSize))),
	}
}

// Normalize applies the page defaults and drops empty filter values.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	filters := make(map[string]string, len(p.Filters))
	for k, v := range p.Filters {
		if v = strings.TrimSpace(v); v != "" {
			filters[k] = v
		}
	}
	p.Filters = filters
	return p
}

// Key is a canonical string for the normalized params, stable across map
// ordering. Used to key cached results.
func (p Params) Key() string {
	p = p.Normalize()

	names := make([]string, 0, len(p.Filters))
	for k := range p.Filters {
		names = append(names, k)
	}
	sort.Strings(names)

	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.PageSize))
	v.Set("search", strings.ToLower(strings.TrimSpace(p.Search)))
	for _, k := range names {
		v.Set("f."+k, p.Filters[k])
	}
	return v.Encode()
}

// ParamsFromValues reads search, page, limit and the named filters from a
// query string. "pageSize" is accepted as an alias for "limit". Values that
// are not positive integers fall back to the defaults.
func ParamsFromValues(v url.Values, filterKeys ...string) Params {
	size := v.Get("limit")
	if size == "" {
		size = v.Get("pageSize")
	}

	p := Params{
		Search:   v.Get("search"),
		Page:     positiveInt(v.Get("page"), DefaultPage),
		PageSize: positiveInt(size, DefaultPageSize),
		Filters:  make(map[string]string, len(filterKeys)),
	}
	for _, k := range filterKeys {
		if val := v.Get(k); val != "" {
			p.Filters[k] = val
		}
	}
	return p
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
