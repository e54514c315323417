package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wandshop-api/internal/model"
)

func TestInventory_GetQuantity(t *testing.T) {
	db := seededDB(t)

	assert.Equal(t, 3, quantity(t, db, model.ItemKindWood, woodHolly))
	assert.Equal(t, 2, quantity(t, db, model.ItemKindCore, corePhoenix))
	assert.Equal(t, 0, quantity(t, db, model.ItemKindWood, 999), "absent entry reads as zero")
}

func TestAdjustStock_ExistingEntry(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)

	require.NoError(t, AdjustStock(ctx, db, model.ItemKindWood, woodHolly, 4))
	assert.Equal(t, 7, quantity(t, db, model.ItemKindWood, woodHolly))

	require.NoError(t, AdjustStock(ctx, db, model.ItemKindWood, woodHolly, -2))
	assert.Equal(t, 5, quantity(t, db, model.ItemKindWood, woodHolly))
}

func TestAdjustStock_AbsentEntry(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	before := countRows(t, db, "component_inventory")

	// Non-positive deltas on an absent entry are a silent no-op.
	require.NoError(t, AdjustStock(ctx, db, model.ItemKindCore, 3000, 0))
	require.NoError(t, AdjustStock(ctx, db, model.ItemKindCore, 3000, -4))
	assert.Equal(t, before, countRows(t, db, "component_inventory"))

	require.NoError(t, AdjustStock(ctx, db, model.ItemKindCore, 3000, 6))
	assert.Equal(t, before+1, countRows(t, db, "component_inventory"))
	assert.Equal(t, 6, quantity(t, db, model.ItemKindCore, 3000))
}

func TestAdjustStock_JoinsCallerTransaction(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, AdjustStock(ctx, tx, model.ItemKindWood, woodHolly, 10))
	require.NoError(t, AdjustStock(ctx, tx, model.ItemKindWood, 4242, 1))
	require.NoError(t, tx.Rollback())

	assert.Equal(t, 3, quantity(t, db, model.ItemKindWood, woodHolly))
	assert.Equal(t, 0, quantity(t, db, model.ItemKindWood, 4242))
}

func TestConsumeOne_GuardsZeroStock(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)

	require.NoError(t, consumeOne(ctx, db, model.ItemKindCore, coreVeela))
	assert.Equal(t, 0, quantity(t, db, model.ItemKindCore, coreVeela))

	err := consumeOne(ctx, db, model.ItemKindCore, coreVeela)
	assert.True(t, errors.Is(err, ErrInsufficientInventory))
	assert.Equal(t, 0, quantity(t, db, model.ItemKindCore, coreVeela))
}

func TestInventory_List(t *testing.T) {
	db := seededDB(t)

	entries, err := NewSQLInventoryRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 9)

	var names []string
	for _, e := range entries {
		names = append(names, string(e.Kind)+":"+e.MaterialName)
		assert.False(t, e.LastUpdated.IsZero())
	}
	assert.Equal(t, []string{
		"core:Dragon Heartstring", "core:Phoenix Feather", "core:Unicorn Hair", "core:Veela Hair",
		"wood:Elder", "wood:Holly", "wood:Vine", "wood:Willow", "wood:Yew",
	}, names)
}

func TestInventory_ListUnknownMaterial(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	require.NoError(t, AdjustStock(ctx, db, model.ItemKindWood, 77, 1))

	entries, err := NewSQLInventoryRepository(db).List(ctx)
	require.NoError(t, err)

	var found bool
	for _, e := range entries {
		if e.MaterialID == 77 {
			found = true
			assert.Empty(t, e.MaterialName)
		}
	}
	assert.True(t, found)
}
