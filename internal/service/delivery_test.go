package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wandshop-api/internal/cache"
	"wandshop-api/internal/model"
)

func TestRecordDelivery_InvalidatesInventoryCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(0)
	defer c.Close()
	require.NoError(t, c.Set(ctx, inventoryListKey, []byte("[]"), time.Minute))

	repo := &mockDeliveryRepo{}
	svc := NewDeliveryService(repo, c)

	id, err := svc.RecordDelivery(ctx, &model.Delivery{
		SupplierName: "  Gregorovitch ",
		Items:        []model.DeliveryItem{{Kind: model.ItemKindWood, MaterialID: 1, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Gregorovitch", repo.recorded[0].SupplierName)

	ok, _ := c.Exists(ctx, inventoryListKey)
	assert.False(t, ok)
}

func TestRecordDelivery_Validation(t *testing.T) {
	repo := &mockDeliveryRepo{}
	svc := NewDeliveryService(repo, nil)

	cases := map[string]*model.Delivery{
		"supplier_name": {Items: []model.DeliveryItem{{Kind: model.ItemKindWood, MaterialID: 1, Quantity: 1}}},
		"items":         {SupplierName: "X"},
	}
	for field, d := range cases {
		_, err := svc.RecordDelivery(context.Background(), d)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), field)
		assert.Equal(t, field, verr.Field)
	}

	for _, item := range []model.DeliveryItem{
		{Kind: "stone", MaterialID: 1, Quantity: 1},
		{Kind: model.ItemKindCore, MaterialID: 0, Quantity: 1},
		{Kind: model.ItemKindCore, MaterialID: 1, Quantity: 0},
	} {
		_, err := svc.RecordDelivery(context.Background(), &model.Delivery{SupplierName: "X", Items: []model.DeliveryItem{item}})
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
	}
	assert.Empty(t, repo.recorded)
}

func TestRecordDelivery_PropagatesStoreError(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewDeliveryService(&mockDeliveryRepo{err: boom}, nil)

	_, err := svc.RecordDelivery(context.Background(), &model.Delivery{
		SupplierName: "X",
		Items:        []model.DeliveryItem{{Kind: model.ItemKindCore, MaterialID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, boom)
}
