package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// OrderRepository encapsulates order persistence. Items are stored as a
// JSONB document on the order row.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Order, error)
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository builds the repository.
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, order_number, owner_id, items, total_price, status, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (order_number, owner_id, items, total_price, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	err = r.db.QueryRow(ctx, query,
		order.OrderNumber,
		order.OwnerID,
		items,
		order.TotalPrice,
		string(order.Status),
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	return mapPgError(err)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	const query = `
        UPDATE orders SET items=$1, total_price=$2, status=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	err = r.db.QueryRow(ctx, query,
		items,
		order.TotalPrice,
		string(order.Status),
		order.ID,
	).Scan(&order.UpdatedAt)
	return mapPgError(err)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetOwned returns the order only when ownerID placed it.
func (r *orderRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND owner_id=$2`
	return scanOrder(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *orderRepository) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	limit, offset = normalizePage(limit, offset)
	return r.list(ctx, query, limit, offset)
}

func (r *orderRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE owner_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	limit, offset = normalizePage(limit, offset)
	return r.list(ctx, query, ownerID, limit, offset)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		items  []byte
		status string
	)
	if err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.OwnerID,
		&items,
		&o.TotalPrice,
		&status,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}
