package backend

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"suseli-shop/internal/logger"
)

// Postgres implements Backend over database/sql with the pq driver. The DSN
// is kept alongside the pool because the notification listener dials its
// own connection.
type Postgres struct {
	db  *sql.DB
	dsn string
	log *zap.Logger
}

func NewPostgres(db *sql.DB, dsn string) *Postgres {
	return &Postgres{
		db:  db,
		dsn: dsn,
		log: logger.Named("backend"),
	}
}

// Open dials the backend database and verifies the connection.
func Open(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open backend db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping backend db: %w", err)
	}
	return NewPostgres(db, dsn), nil
}

// Close releases the connection pool. Subscriptions hold their own
// connections and are closed separately.
func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) FetchOrders(ctx context.Context) ([]OrderRow, error) {
	query := `
		SELECT id, customer_name, phone_number, total, status, discount_code, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	var out []OrderRow
	for rows.Next() {
		var (
			o        OrderRow
			discount sql.NullString
		)
		if err := rows.Scan(
			&o.ID, &o.CustomerName, &o.PhoneNumber,
			&o.Total, &o.Status, &discount, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		o.DiscountCode = discount.String
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}
	return out, nil
}

func (p *Postgres) FetchItems(ctx context.Context) ([]ItemRow, error) {
	query := `
		SELECT order_id, product_name, quantity, price, image
		FROM order_items
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	defer rows.Close()

	var out []ItemRow
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.OrderID, &it.ProductName, &it.Quantity, &it.Price, &it.Image); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order item rows: %w", err)
	}
	return out, nil
}

func (p *Postgres) CreateOrder(ctx context.Context, row OrderRow) error {
	query := `
		INSERT INTO orders (id, customer_name, phone_number, total, status, discount_code)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
	`

	_, err := p.db.ExecContext(ctx, query,
		row.ID, row.CustomerName, row.PhoneNumber, row.Total, row.Status, row.DiscountCode,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (p *Postgres) CreateItems(ctx context.Context, rows []ItemRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order items tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO order_items (order_id, product_name, quantity, price, image)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, it := range rows {
		if _, err := tx.ExecContext(ctx, query,
			it.OrderID, it.ProductName, it.Quantity, it.Price, it.Image,
		); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order items: %w", err)
	}
	return nil
}

func (p *Postgres) UpdateStatus(ctx context.Context, orderID, status string) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (p *Postgres) DeleteOrder(ctx context.Context, orderID string) error {
	// order_items rows go with the order via ON DELETE CASCADE.
	res, err := p.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
