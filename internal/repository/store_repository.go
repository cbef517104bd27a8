package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// StoreRepository encapsulates store persistence.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Store, error)
	List(ctx context.Context, limit, offset int) ([]domain.Store, error)
}

type storeRepository struct {
	db DBTX
}

// NewStoreRepository instantiates repository.
func NewStoreRepository(db DBTX) StoreRepository {
	return &storeRepository{db: db}
}

const storeColumns = `id, owner_id, name, description, active, created_at, updated_at`

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (owner_id, name, description, active)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		store.OwnerID,
		store.Name,
		store.Description,
		store.Active,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
	return mapPgError(err)
}

func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	const query = `
        UPDATE stores SET name=$1, description=$2, active=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		store.Name,
		store.Description,
		store.Active,
		store.ID,
	).Scan(&store.UpdatedAt)
	return mapPgError(err)
}

// Delete removes the store and, through the foreign key, its products.
func (r *storeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	const query = `SELECT ` + storeColumns + ` FROM stores WHERE id=$1`
	return scanStore(r.db.QueryRow(ctx, query, id))
}

// GetOwned returns the store only when ownerID owns it.
func (r *storeRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Store, error) {
	const query = `SELECT ` + storeColumns + ` FROM stores WHERE id=$1 AND owner_id=$2`
	return scanStore(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *storeRepository) List(ctx context.Context, limit, offset int) ([]domain.Store, error) {
	const query = `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	stores := []domain.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, *store)
	}
	return stores, rows.Err()
}

func scanStore(row pgx.Row) (*domain.Store, error) {
	var store domain.Store
	if err := row.Scan(
		&store.ID,
		&store.OwnerID,
		&store.Name,
		&store.Description,
		&store.Active,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &store, nil
}
