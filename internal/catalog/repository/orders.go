package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-catalog/internal/catalog"
)

// PostgresOrderRepository stores checked-out orders. Order lines keep the
// product ID without a foreign key, so deleting a product never touches
// order history.
type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrders(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) SaveOrder(ctx context.Context, order catalog.Order) (catalog.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return catalog.Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.QueryRowContext(ctx,
		`INSERT INTO orders (total, created_at) VALUES ($1, $2) RETURNING id`,
		order.Total, order.CreatedAt,
	).Scan(&order.ID); err != nil {
		return catalog.Order{}, fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, line := range order.Lines {
		if _, err := tx.ExecContext(ctx, lineQuery,
			order.ID, line.ProductID, line.ProductName, line.Quantity, line.UnitPrice,
		); err != nil {
			return catalog.Order{}, fmt.Errorf("insert order line for product %d: %w", line.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return catalog.Order{}, fmt.Errorf("commit order: %w", err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) GetOrder(ctx context.Context, id int64) (catalog.Order, error) {
	var order catalog.Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, total, created_at FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.Total, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Order{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Order{}, fmt.Errorf("select order %d: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, product_name, quantity, unit_price
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return catalog.Order{}, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	order.Lines = make([]catalog.OrderLine, 0)
	for rows.Next() {
		var line catalog.OrderLine
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &line.UnitPrice); err != nil {
			return catalog.Order{}, fmt.Errorf("scan order line: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return catalog.Order{}, fmt.Errorf("iterate order lines: %w", err)
	}

	return order, nil
}
