package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wandshop-api/internal/model"
)

func TestSales_CreateAndList(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	repo := NewSQLSalesRepository(db)

	id, err := repo.Create(ctx, &model.Sale{
		WandID:        1,
		CustomerID:    1,
		SaleDate:      "2024-06-01",
		SalePrice:     decimal.RequireFromString("12.00"),
		PaymentMethod: model.PaymentGringotts,
	})
	require.NoError(t, err)

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	latest := sales[0]
	assert.Equal(t, id, latest.SaleID)
	assert.Equal(t, "2024-06-01", latest.SaleDate)
	assert.Equal(t, "Harry Potter", latest.CustomerName)
	assert.Equal(t, "Yew", latest.WoodType)
	assert.Equal(t, "Dragon Heartstring", latest.CoreMaterial)
	assert.Equal(t, 13.5, latest.Length)
	assert.Equal(t, model.FlexRigid, latest.Flexibility)
	assert.Equal(t, model.PaymentGringotts, latest.PaymentMethod)
	assert.True(t, decimal.NewFromInt(12).Equal(latest.SalePrice))

	assert.Equal(t, "Hermione Granger", sales[1].CustomerName)
}

func TestSales_CreateHasNoInventoryEffect(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	before := quantity(t, db, model.ItemKindWood, 3)

	_, err := NewSQLSalesRepository(db).Create(ctx, &model.Sale{
		WandID: 1, CustomerID: 3, SaleDate: "2024-06-02",
		SalePrice: decimal.NewFromInt(12), PaymentMethod: model.PaymentCredit,
	})
	require.NoError(t, err)
	assert.Equal(t, before, quantity(t, db, model.ItemKindWood, 3))
}

func TestSales_CreateUnknownWandFails(t *testing.T) {
	_, err := NewSQLSalesRepository(seededDB(t)).Create(context.Background(), &model.Sale{
		WandID: 999, CustomerID: 1, SaleDate: "2024-06-02",
		SalePrice: decimal.NewFromInt(1), PaymentMethod: model.PaymentCredit,
	})
	assert.Error(t, err)
}
