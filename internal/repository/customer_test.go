package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wandshop-api/internal/model"
)

func TestCustomer_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	id, err := repo.Create(ctx, &model.Customer{
		FirstName:   "Luna",
		LastName:    "Lovegood",
		BirthDate:   "1981-02-13",
		BloodStatus: model.BloodPure,
		House:       model.HouseRavenclaw,
		Species:     "human",
		WandLicense: "WL-0099",
	})
	require.NoError(t, err)

	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Luna Lovegood", c.FullName())
	assert.Equal(t, model.HouseRavenclaw, c.House)
	assert.Equal(t, "1981-02-13", c.BirthDate)
	assert.Equal(t, "WL-0099", c.WandLicense)
	assert.False(t, c.RegistrationDate.IsZero())
}

func TestCustomer_GetMissing(t *testing.T) {
	c, err := NewSQLCustomerRepository(seededDB(t)).Get(context.Background(), 77)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCustomer_DuplicateLicense(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	_, err := repo.Create(ctx, &model.Customer{FirstName: "Ron", LastName: "Weasley", WandLicense: "WL-0001"})
	assert.True(t, errors.Is(err, ErrDuplicateLicense))

	c, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	c.WandLicense = "WL-0002"
	assert.True(t, errors.Is(repo.Update(ctx, c), ErrDuplicateLicense))
}

func TestCustomer_BlankLicensesAreNotUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	_, err := repo.Create(ctx, &model.Customer{FirstName: "Griphook", LastName: "Goblin"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Customer{FirstName: "Dobby", LastName: "Elf", WandLicense: "   "})
	require.NoError(t, err)
}

func TestCustomer_CountByLicense(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	n, err := repo.CountByLicense(ctx, "WL-0001", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.CountByLicense(ctx, "WL-0001", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "the holder itself is excluded")

	n, err = repo.CountByLicense(ctx, "WL-7777", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCustomer_ListAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Granger", "Hagrid", "Potter"},
		[]string{all[0].LastName, all[1].LastName, all[2].LastName})

	found, err := repo.FindByName(ctx, "her")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Hermione", found[0].FirstName)
	assert.Empty(t, all[1].WandLicense)
}

func TestCustomer_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	c, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	registered := c.RegistrationDate
	c.WandLicense = "WL-0003"
	c.Notes = "License restored"
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "WL-0003", got.WandLicense)
	assert.Equal(t, registered, got.RegistrationDate)

	require.NoError(t, repo.Delete(ctx, 3))
	assert.True(t, errors.Is(repo.Delete(ctx, 3), ErrNotFound))
	assert.True(t, errors.Is(repo.Update(ctx, &model.Customer{ID: 500, FirstName: "X", LastName: "Y"}), ErrNotFound))
}

func TestCustomer_DeleteBuyerIsInUse(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLCustomerRepository(seededDB(t))

	err := repo.Delete(ctx, 2)
	assert.True(t, errors.Is(err, ErrInUse))

	c, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
