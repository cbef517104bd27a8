package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

var reviewRowColumns = []string{
	"id", "product_id", "owner_id", "title", "content", "stars", "created_at", "updated_at",
}

func TestReviewRepository_Create(t *testing.T) {
	pool := newMockPool(t)
	repo := NewReviewRepository(pool)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`INSERT INTO reviews`).
		WithArgs("p-1", "u-1", "Great apples", "Crisp and fresh every week", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("r-1", now, now))
	pool.ExpectQuery(`INSERT INTO reviews`).
		WithArgs("p-1", "u-1", "Again", "Trying to review twice", 1).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	review := &domain.Review{ProductID: "p-1", OwnerID: "u-1", Title: "Great apples", Content: "Crisp and fresh every week", Stars: 5}
	require.NoError(t, repo.Create(context.Background(), review))
	assert.Equal(t, "r-1", review.ID)

	dup := &domain.Review{ProductID: "p-1", OwnerID: "u-1", Title: "Again", Content: "Trying to review twice", Stars: 1}
	assert.ErrorIs(t, repo.Create(context.Background(), dup), ErrConflict)
}

func TestReviewRepository_ExistsFor(t *testing.T) {
	pool := newMockPool(t)
	repo := NewReviewRepository(pool)

	pool.ExpectQuery(`SELECT EXISTS`).WithArgs("u-1", "p-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsFor(context.Background(), "u-1", "p-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReviewRepository_ListByProduct(t *testing.T) {
	pool := newMockPool(t)
	repo := NewReviewRepository(pool)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	pool.ExpectQuery(`FROM reviews WHERE product_id=\$1`).
		WithArgs("p-1", 10, 20).
		WillReturnRows(pgxmock.NewRows(reviewRowColumns).
			AddRow("r-1", "p-1", "u-1", "Great apples", "Crisp and fresh every week", 5, now, now).
			AddRow("r-2", "p-1", "u-2", "Fine", "Good value for the price", 3, now, now))

	reviews, err := repo.ListByProduct(context.Background(), "p-1", 10, 20)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 3, reviews[1].Stars)
}

func TestReviewRepository_GetOwnedMissing(t *testing.T) {
	pool := newMockPool(t)
	repo := NewReviewRepository(pool)

	pool.ExpectQuery(`FROM reviews WHERE id=\$1 AND owner_id=\$2`).
		WithArgs("not-a-uuid", "u-1").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation})

	_, err := repo.GetOwned(context.Background(), "not-a-uuid", "u-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
