package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

var productRowColumns = []string{
	"id", "store_id", "owner_id", "name", "description", "quantity", "min_quantity",
	"unit_price", "active", "created_at", "updated_at",
}

func TestProductRepository_Create(t *testing.T) {
	pool := newMockPool(t)
	repo := NewProductRepository(pool)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`INSERT INTO products`).
		WithArgs("s-1", "u-1", "Apples", "Crisp red apples", 40, 5, 1.25, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("p-1", now, now))

	p := &domain.Product{
		StoreID: "s-1", OwnerID: "u-1", Name: "Apples", Description: "Crisp red apples",
		Quantity: 40, MinQuantity: 5, UnitPrice: 1.25, Active: true,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, "p-1", p.ID)
}

func TestProductRepository_GetOwned(t *testing.T) {
	pool := newMockPool(t)
	repo := NewProductRepository(pool)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`JOIN stores s ON s.id = p.store_id`).
		WithArgs("p-1", "", "u-1").
		WillReturnRows(pgxmock.NewRows(productRowColumns).
			AddRow("p-1", "s-1", "u-1", "Apples", "Crisp red apples", 40, 5, 1.25, true, now, now))
	pool.ExpectQuery(`JOIN stores s ON s.id = p.store_id`).
		WithArgs("p-1", "s-2", "u-1").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetOwned(context.Background(), "p-1", "", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.StoreID)
	assert.InDelta(t, 1.25, got.UnitPrice, 0.0001)

	_, err = repo.GetOwned(context.Background(), "p-1", "s-2", "u-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRepository_ListByStore(t *testing.T) {
	pool := newMockPool(t)
	repo := NewProductRepository(pool)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`FROM products WHERE store_id=\$1`).
		WithArgs("s-1", 50, 0).
		WillReturnRows(pgxmock.NewRows(productRowColumns).
			AddRow("p-1", "s-1", "u-1", "Apples", "Crisp red apples", 40, 5, 1.25, true, now, now).
			AddRow("p-2", "s-1", "u-1", "Pears", "Juicy green pears", 10, 2, 2.5, false, now, now))

	products, err := repo.ListByStore(context.Background(), "s-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.False(t, products[1].Active)
}

func TestProductRepository_DeleteMissing(t *testing.T) {
	pool := newMockPool(t)
	repo := NewProductRepository(pool)

	pool.ExpectExec(`DELETE FROM products WHERE id=\$1`).WithArgs("p-9").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "p-9"), ErrNotFound)
}

func TestProductRepository_GetMany(t *testing.T) {
	pool := newMockPool(t)
	repo := NewProductRepository(pool)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`WHERE id::text = ANY\(\$1\)`).
		WithArgs([]string{"p-1", "p-404"}).
		WillReturnRows(pgxmock.NewRows(productRowColumns).
			AddRow("p-1", "s-1", "u-1", "Apples", "Crisp red apples", 40, 5, 1.25, true, now, now))

	products, err := repo.GetMany(context.Background(), []string{"p-1", "p-404"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-1", products[0].ID)

	products, err = repo.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}
