package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// ReviewRepository encapsulates review persistence. The (owner_id,
// product_id) pair is unique; a second review surfaces as ErrConflict.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Review, error)
	ExistsFor(ctx context.Context, ownerID, productID string) (bool, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.Review, error)
}

type reviewRepository struct {
	db DBTX
}

// NewReviewRepository builds the repository.
func NewReviewRepository(db DBTX) ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, product_id, owner_id, title, content, stars, created_at, updated_at`

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (product_id, owner_id, title, content, stars)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		review.ProductID,
		review.OwnerID,
		review.Title,
		review.Content,
		review.Stars,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	return mapPgError(err)
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	const query = `
        UPDATE reviews SET title=$1, content=$2, stars=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		review.Title,
		review.Content,
		review.Stars,
		review.ID,
	).Scan(&review.UpdatedAt)
	return mapPgError(err)
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetOwned returns the review only when ownerID wrote it.
func (r *reviewRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE id=$1 AND owner_id=$2`
	return scanReview(r.db.QueryRow(ctx, query, id, ownerID))
}

// ExistsFor reports whether ownerID already reviewed productID.
func (r *reviewRepository) ExistsFor(ctx context.Context, ownerID, productID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM reviews WHERE owner_id=$1 AND product_id::text=$2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, ownerID, productID).Scan(&exists); err != nil {
		return false, mapPgError(err)
	}
	return exists, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.Review, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	if err := row.Scan(
		&rv.ID,
		&rv.ProductID,
		&rv.OwnerID,
		&rv.Title,
		&rv.Content,
		&rv.Stars,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &rv, nil
}
