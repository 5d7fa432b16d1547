package collection_test

import (
	"math"
	"testing"

	"github.com/shashiranjanraj/shopadmin/pkg/collection"
)

func TestFilterKeepsOrderAndIsNeverNil(t *testing.T) {
	got := collection.Filter([]int{5, 2, 8, 1}, func(n int) bool { return n > 1 })
	want := []int{5, 2, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	none := collection.Filter([]int{1}, func(int) bool { return false })
	if none == nil {
		t.Error("expected empty non-nil slice")
	}
}

func TestPaginate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	cases := []struct {
		page, size int
		want       []int
	}{
		{1, 2, []int{1, 2}},
		{3, 2, []int{5}},
		{4, 2, []int{}},
		{0, 2, []int{1, 2}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{math.MaxInt/2 + 1, 4, []int{}},
		{2, math.MaxInt, []int{}},
		{1, math.MaxInt, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		got := collection.Paginate(s, tc.page, tc.size)
		if got == nil {
			t.Errorf("page %d size %d: got nil slice", tc.page, tc.size)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("page %d size %d: expected %v, got %v", tc.page, tc.size, tc.want, got)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("page %d size %d: expected %v, got %v", tc.page, tc.size, tc.want, got)
				break
			}
		}
	}
}

func TestSumAndIndexOf(t *testing.T) {
	type line struct {
		qty   int
		price float64
	}
	lines := []line{{2, 1.5}, {1, 10}}

	if got := collection.Sum(lines, func(l line) float64 { return float64(l.qty) * l.price }); got != 13 {
		t.Errorf("expected 13, got %v", got)
	}
	if idx := collection.IndexOf(lines, func(l line) bool { return l.price == 10 }); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
	if collection.Contains(lines, func(l line) bool { return l.qty > 5 }) {
		t.Error("expected no match")
	}
	if v, ok := collection.First(lines, func(l line) bool { return l.qty == 2 }); !ok || v.price != 1.5 {
		t.Errorf("unexpected First result %+v %v", v, ok)
	}
}
