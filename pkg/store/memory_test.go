package store_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopadmin/pkg/store"
)

type item struct {
	ID   string
	Tags []string
}

func (i item) Key() string { return i.ID }

func (i item) Clone() item {
	i.Tags = append([]string(nil), i.Tags...)
	return i
}

func seeded() *store.Memory[item] {
	return store.NewMemory("items", []item{
		{ID: "a", Tags: []string{"x"}},
		{ID: "b"},
		{ID: "c"},
	})
}

func TestSnapshotReturnsCopies(t *testing.T) {
	m := seeded()

	snap := m.Snapshot()
	snap[0].Tags[0] = "mutated"
	snap[0].ID = "zzz"

	again, err := m.Find("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestFindMissing(t *testing.T) {
	_, err := seeded().Find("nope")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestInsertAppendsAndBumpsVersion(t *testing.T) {
	m := seeded()
	v0 := m.Version()

	got, err := m.Insert(func(keys []string) (item, error) {
		assert.Equal(t, []string{"a", "b", "c"}, keys)
		return item{ID: "d"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "d", got.ID)
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, v0+1, m.Version())

	snap := m.Snapshot()
	assert.Equal(t, "d", snap[len(snap)-1].ID)
}

func TestInsertBuildErrorLeavesStoreUnchanged(t *testing.T) {
	m := seeded()
	v0 := m.Version()

	_, err := m.Insert(func([]string) (item, error) { return item{}, errors.New("boom") })
	require.Error(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, v0, m.Version())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	m := seeded()

	got, err := m.Update("b", func(cur item) (item, error) {
		cur.Tags = []string{"new"}
		return cur, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got.Tags)

	snap := m.Snapshot()
	assert.Equal(t, "b", snap[1].ID)
	assert.Equal(t, []string{"new"}, snap[1].Tags)
}

func TestUpdateErrorsLeaveStoreUnchanged(t *testing.T) {
	m := seeded()
	v0 := m.Version()

	_, err := m.Update("missing", func(cur item) (item, error) { return cur, nil })
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = m.Update("a", func(cur item) (item, error) {
		cur.Tags[0] = "half-applied"
		return cur, errors.New("invalid")
	})
	require.Error(t, err)

	_, err = m.Update("a", func(cur item) (item, error) {
		cur.ID = "renamed"
		return cur, nil
	})
	require.Error(t, err)

	a, _ := m.Find("a")
	assert.Equal(t, []string{"x"}, a.Tags)
	assert.Equal(t, v0, m.Version())
}

func TestDeleteRemovesAndKeepsOrder(t *testing.T) {
	m := seeded()

	require.NoError(t, m.Delete("b"))
	_, err := m.Find("b")
	assert.ErrorIs(t, err, store.ErrNotFound)

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, "c", snap[1].ID)

	assert.ErrorIs(t, m.Delete("b"), store.ErrNotFound)
}

func TestConcurrentInsertsGetDistinctKeys(t *testing.T) {
	m := store.NewMemory[item]("items", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Insert(func(keys []string) (item, error) {
				return item{ID: fmt.Sprintf("k-%d", len(keys))}, nil
			})
			_ = m.Snapshot()
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	require.Len(t, snap, 50)
	seen := map[string]bool{}
	for _, it := range snap {
		assert.False(t, seen[it.ID], "duplicate key %s", it.ID)
		seen[it.ID] = true
	}
	assert.Equal(t, uint64(50), m.Version())
}
