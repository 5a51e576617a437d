package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"product-catalog/internal/catalog"
)

const healthCheckTimeout = 2 * time.Second

const productColumns = `id, name, description, details, price, quantity`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Details, &p.Price, &p.Quantity)
	return p, err
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	list := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Product{}, fmt.Errorf("select product %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	query := `
		INSERT INTO products (name, description, details, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Details, p.Price, p.Quantity,
	).Scan(&p.ID); err != nil {
		return catalog.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p catalog.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, details = $4, price = $5, quantity = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Details, p.Price, p.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return requireAffected(result)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return requireAffected(result)
}

// UpdateStock subtracts quantity in a single statement so concurrent
// checkouts can never drive stock below zero.
func (r *PostgresRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	query := `
		UPDATE products
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
	`

	result, err := r.db.ExecContext(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check product %d: %w", id, err)
	}
	if !exists {
		return catalog.ErrNotFound
	}
	return catalog.ErrInsufficientStock
}

// RestoreStock gives back quantity taken by UpdateStock.
func (r *PostgresRepository) RestoreStock(ctx context.Context, id int64, quantity int) error {
	query := `UPDATE products SET quantity = quantity + $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("restore stock %d: %w", id, err)
	}
	return requireAffected(result)
}

func (r *PostgresRepository) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
