package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// ProductRepository encapsulates product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetOwned(ctx context.Context, id, storeID, ownerID string) (*domain.Product, error)
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]domain.Product, error)
	GetMany(ctx context.Context, ids []string) ([]domain.Product, error)
}

type productRepository struct {
	db DBTX
}

// NewProductRepository builds the repository.
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, store_id, owner_id, name, description, quantity, min_quantity, unit_price, active, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (store_id, owner_id, name, description, quantity, min_quantity, unit_price, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		product.StoreID,
		product.OwnerID,
		product.Name,
		product.Description,
		product.Quantity,
		product.MinQuantity,
		product.UnitPrice,
		product.Active,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	return mapPgError(err)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, description=$2, quantity=$3, min_quantity=$4, unit_price=$5,
            active=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Quantity,
		product.MinQuantity,
		product.UnitPrice,
		product.Active,
		product.ID,
	).Scan(&product.UpdatedAt)
	return mapPgError(err)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.db.QueryRow(ctx, query, id))
}

// GetOwned returns the product only when it belongs to storeID and both are
// owned by ownerID. An empty storeID matches any store.
func (r *productRepository) GetOwned(ctx context.Context, id, storeID, ownerID string) (*domain.Product, error) {
	const query = `
        SELECT p.id, p.store_id, p.owner_id, p.name, p.description, p.quantity, p.min_quantity,
               p.unit_price, p.active, p.created_at, p.updated_at
        FROM products p
        JOIN stores s ON s.id = p.store_id
        WHERE p.id=$1 AND p.owner_id=$3 AND s.owner_id=$3 AND ($2 = '' OR p.store_id::text = $2)`
	return scanProduct(r.db.QueryRow(ctx, query, id, storeID, ownerID))
}

func (r *productRepository) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]domain.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE store_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

// GetMany returns the products among ids that exist. Ids that are not valid
// UUIDs simply match nothing.
func (r *productRepository) GetMany(ctx context.Context, ids []string) ([]domain.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id::text = ANY($1)`
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.StoreID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.Quantity,
		&p.MinQuantity,
		&p.UnitPrice,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &p, nil
}
