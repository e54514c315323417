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

func TestListInventory_CachedUntilStockChanges(t *testing.T) {
	ctx := context.Background()
	repo := newMockInventoryRepo()
	repo.set(model.ItemKindWood, 1, 3)
	c := cache.NewMemoryCache(0)
	defer c.Close()
	svc := NewInventoryService(repo, c, time.Minute)

	for i := 0; i < 3; i++ {
		entries, err := svc.ListInventory(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 3, entries[0].Quantity)
	}
	assert.Equal(t, 1, repo.listCall)

	require.NoError(t, svc.AdjustStock(ctx, model.ItemKindWood, 1, 2))
	entries, err := svc.ListInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, 2, repo.listCall)
}

func TestAdjustStock_Validation(t *testing.T) {
	svc := NewInventoryService(newMockInventoryRepo(), nil, time.Minute)

	var verr *ValidationError
	err := svc.AdjustStock(context.Background(), "stone", 1, 1)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "kind", verr.Field)

	err = svc.AdjustStock(context.Background(), model.ItemKindCore, 0, 1)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "material_id", verr.Field)
}

func TestGetQuantity_AbsentIsZero(t *testing.T) {
	svc := NewInventoryService(newMockInventoryRepo(), nil, time.Minute)
	q, err := svc.GetQuantity(context.Background(), model.ItemKindCore, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, q)
}

func TestNewInventoryService_RequiresRepo(t *testing.T) {
	assert.Nil(t, NewInventoryService(nil, nil, time.Minute))
}

// slowListRepo takes its snapshot, then waits for release before returning.
type slowListRepo struct {
	*mockInventoryRepo
	snapshot chan struct{}
	release  chan struct{}
}

func (r *slowListRepo) List(ctx context.Context) ([]model.InventoryEntry, error) {
	entries, err := r.mockInventoryRepo.List(ctx)
	close(r.snapshot)
	<-r.release
	return entries, err
}

func TestListInventory_WriteDuringReadIsNotCached(t *testing.T) {
	ctx := context.Background()
	base := newMockInventoryRepo()
	base.set(model.ItemKindWood, 1, 3)
	slow := &slowListRepo{mockInventoryRepo: base, snapshot: make(chan struct{}), release: make(chan struct{})}

	c := cache.NewMemoryCache(0)
	defer c.Close()
	svc := NewInventoryService(slow, c, time.Minute)

	done := make(chan []model.InventoryEntry)
	go func() {
		entries, err := svc.ListInventory(ctx)
		assert.NoError(t, err)
		done <- entries
	}()

	<-slow.snapshot
	require.NoError(t, svc.AdjustStock(ctx, model.ItemKindWood, 1, 2))
	close(slow.release)

	// the in-flight reader still sees its own snapshot
	stale := <-done
	require.Len(t, stale, 1)
	assert.Equal(t, 3, stale[0].Quantity)

	fresh, err := NewInventoryService(base, c, time.Minute).ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, 5, fresh[0].Quantity)
}
