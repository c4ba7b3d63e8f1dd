package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centrominero/gil/internal/repository"
)

type stubLister struct {
	items []*repository.Equipment
	err   error
}

func (s stubLister) ListAvailable(context.Context) ([]*repository.Equipment, error) {
	return s.items, s.err
}

func available(id int64, code string) *repository.Equipment {
	return &repository.Equipment{ID: id, InternalCode: code, State: repository.EquipmentAvailable}
}

func TestLoadInitialData(t *testing.T) {
	t.Run("fills the cache from the store", func(t *testing.T) {
		c := NewEquipmentCache(stubLister{items: []*repository.Equipment{
			available(1, "EQ-001"),
			available(2, "EQ-002"),
		}}, nil)

		require.NoError(t, c.LoadInitialData(context.Background()))

		_, found := c.Get(1)
		assert.True(t, found)
		assert.Len(t, c.List(), 2)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		c := NewEquipmentCache(stubLister{err: errors.New("down")}, nil)
		assert.Error(t, c.LoadInitialData(context.Background()))
	})
}

func TestSetEvictsUnavailable(t *testing.T) {
	c := NewEquipmentCache(stubLister{}, nil)

	eq := available(1, "EQ-001")
	c.Set(eq)
	_, found := c.Get(1)
	require.True(t, found)

	eq.State = repository.EquipmentLoaned
	c.Set(eq)
	_, found = c.Get(1)
	assert.False(t, found)
}

func TestGetReturnsACopy(t *testing.T) {
	c := NewEquipmentCache(stubLister{}, nil)
	c.Set(available(1, "EQ-001"))

	got, found := c.Get(1)
	require.True(t, found)
	got.InternalCode = "mutated"

	again, _ := c.Get(1)
	assert.Equal(t, "EQ-001", again.InternalCode)
}

func TestListOrdersByInternalCode(t *testing.T) {
	c := NewEquipmentCache(stubLister{}, nil)
	c.Set(available(3, "EQ-030"))
	c.Set(available(1, "EQ-010"))
	c.Set(available(2, "EQ-020"))

	items := c.List()
	require.Len(t, items, 3)
	assert.Equal(t, "EQ-010", items[0].InternalCode)
	assert.Equal(t, "EQ-020", items[1].InternalCode)
	assert.Equal(t, "EQ-030", items[2].InternalCode)
}

func TestDelete(t *testing.T) {
	c := NewEquipmentCache(stubLister{}, nil)
	c.Set(available(1, "EQ-001"))

	c.Delete(1)
	_, found := c.Get(1)
	assert.False(t, found)

	// Deleting a missing key is a no-op.
	c.Delete(99)
}
