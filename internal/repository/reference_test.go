package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLReferenceRepository(seededDB(t))

	id, err := repo.WoodIDByName(ctx, "Holly")
	require.NoError(t, err)
	assert.Equal(t, woodHolly, id)

	id, err = repo.CoreIDByMaterial(ctx, "Phoenix Feather")
	require.NoError(t, err)
	assert.Equal(t, corePhoenix, id)

	_, err = repo.WoodIDByName(ctx, "Mahogany")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = repo.CoreIDByMaterial(ctx, "Thestral Hair")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReference_Lists(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLReferenceRepository(seededDB(t))

	woods, err := repo.ListWoodTypes(ctx)
	require.NoError(t, err)
	require.Len(t, woods, 5)
	assert.Equal(t, "Elder", woods[0].Name)

	cores, err := repo.ListCores(ctx)
	require.NoError(t, err)
	require.Len(t, cores, 4)
	assert.Equal(t, "Dragon Heartstring", cores[0].Material)
}

func TestStats(t *testing.T) {
	stats, err := NewSQLStatsRepository(seededDB(t), "sqlite").GetStats(context.Background())
	require.NoError(t, err)

	rows := stats["rows"].(map[string]int64)
	assert.Equal(t, int64(5), rows["wood_types"])
	assert.Equal(t, int64(1), rows["sales"])
	assert.Equal(t, int64(32), stats["units_on_hand"])
	assert.Positive(t, stats["db_size_bytes"])
}
