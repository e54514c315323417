package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wandshop-api/internal/model"
)

func validWand() *model.Wand {
	return &model.Wand{
		WoodID:      1,
		CoreID:      1,
		Length:      11.5,
		Flexibility: model.FlexWhippy,
		Price:       decimal.NewFromInt(7),
	}
}

func TestCreateWand_Success(t *testing.T) {
	inv := newMockInventoryRepo()
	inv.set(model.ItemKindWood, 1, 2)
	inv.set(model.ItemKindCore, 1, 1)
	wands := newMockWandRepo(inv)
	svc := NewWandService(wands, inv, nil)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) }

	w := validWand()
	id, err := svc.CreateWand(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, w.ID)

	stored, _ := wands.Get(context.Background(), id)
	assert.Equal(t, model.StatusInStock, stored.Status)
	assert.Equal(t, model.ConditionNew, stored.Condition)
	assert.Equal(t, "2024-07-01", stored.ProductionDate)
}

func TestCreateWand_InsufficientInventoryWritesNothing(t *testing.T) {
	inv := newMockInventoryRepo()
	inv.set(model.ItemKindWood, 1, 4)
	inv.set(model.ItemKindCore, 1, 0)
	wands := newMockWandRepo(inv)
	svc := NewWandService(wands, inv, nil)

	_, err := svc.CreateWand(context.Background(), validWand())
	assert.True(t, errors.Is(err, ErrInsufficientInventory))
	assert.Empty(t, wands.wands)

	q, _ := inv.GetQuantity(context.Background(), model.ItemKindWood, 1)
	assert.Equal(t, 4, q)
}

func TestCreateWand_Validation(t *testing.T) {
	inv := newMockInventoryRepo()
	svc := NewWandService(newMockWandRepo(inv), inv, nil)

	cases := map[string]func(w *model.Wand){
		"length":          func(w *model.Wand) { w.Length = 0 },
		"price":           func(w *model.Wand) { w.Price = decimal.NewFromInt(-1) },
		"flexibility":     func(w *model.Wand) { w.Flexibility = "bendy" },
		"status":          func(w *model.Wand) { w.Status = "lost" },
		"wood_id":         func(w *model.Wand) { w.WoodID = 0 },
		"production_date": func(w *model.Wand) { w.ProductionDate = "01/02/2024" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			w := validWand()
			mutate(w)
			_, err := svc.CreateWand(context.Background(), w)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, field, verr.Field)
		})
	}
}

func TestUpdateDeleteWand_DoNotRestock(t *testing.T) {
	ctx := context.Background()
	inv := newMockInventoryRepo()
	inv.set(model.ItemKindWood, 1, 1)
	inv.set(model.ItemKindCore, 1, 1)
	svc := NewWandService(newMockWandRepo(inv), inv, nil)

	w := validWand()
	id, err := svc.CreateWand(ctx, w)
	require.NoError(t, err)

	w.Status = model.StatusDefective
	require.NoError(t, svc.UpdateWand(ctx, w))
	require.NoError(t, svc.DeleteWand(ctx, id))
	assert.True(t, errors.Is(svc.DeleteWand(ctx, id), ErrNotFound))

	wood, _ := inv.GetQuantity(ctx, model.ItemKindWood, 1)
	core, _ := inv.GetQuantity(ctx, model.ItemKindCore, 1)
	assert.Equal(t, 0, wood)
	assert.Equal(t, 0, core)
}

func TestUpdateWand_BlankFieldsKeepStoredValues(t *testing.T) {
	ctx := context.Background()
	inv := newMockInventoryRepo()
	inv.set(model.ItemKindWood, 1, 1)
	inv.set(model.ItemKindCore, 1, 1)
	svc := NewWandService(newMockWandRepo(inv), inv, nil)

	w := validWand()
	w.Status = model.StatusReserved
	id, err := svc.CreateWand(ctx, w)
	require.NoError(t, err)

	edit := validWand()
	edit.ID = id
	edit.Condition = ""
	edit.Status = ""
	edit.ProductionDate = ""
	edit.Length = 12
	require.NoError(t, svc.UpdateWand(ctx, edit))

	got, err := svc.GetWand(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReserved, got.Status)
	assert.Equal(t, w.Condition, got.Condition)
	assert.Equal(t, w.ProductionDate, got.ProductionDate)
	assert.Equal(t, 12.0, got.Length)

	missing := validWand()
	missing.ID = 99
	missing.Status = ""
	assert.True(t, errors.Is(svc.UpdateWand(ctx, missing), ErrNotFound))
}

func TestNewWandService_RequiresRepos(t *testing.T) {
	assert.Nil(t, NewWandService(nil, newMockInventoryRepo(), nil))
}
