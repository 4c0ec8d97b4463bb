package backend

import (
	"context"
	"io"
	"time"
)

// Table names of the remote order store.
const (
	TableOrders     = "orders"
	TableOrderItems = "order_items"
)

// OrderRow mirrors the orders table. Column naming follows the backend
// schema, not the display model; internal/orders owns the mapping.
type OrderRow struct {
	ID           string
	CustomerName string
	PhoneNumber  string
	Total        float64
	Status       string
	DiscountCode string
	CreatedAt    time.Time
}

// ItemRow mirrors the order_items table.
type ItemRow struct {
	OrderID     string
	ProductName string
	Quantity    int
	Price       string
	Image       string
}

// Change describes one insert/update/delete pushed by the backend.
type Change struct {
	Table string `json:"table"`
	Op    string `json:"op"`
}

// Backend is the remote order store the container synchronizes against.
// It is the serialization point for all writes; the client holds no
// authority over the order list beyond these calls.
type Backend interface {
	// FetchOrders returns all orders, newest first.
	FetchOrders(ctx context.Context) ([]OrderRow, error)
	FetchItems(ctx context.Context) ([]ItemRow, error)
	CreateOrder(ctx context.Context, row OrderRow) error
	CreateItems(ctx context.Context, rows []ItemRow) error
	UpdateStatus(ctx context.Context, orderID, status string) error
	DeleteOrder(ctx context.Context, orderID string) error

	// Subscribe registers fn for change notifications on the orders and
	// order_items tables. fn runs on the subscription's own goroutine.
	// Closing the returned Closer tears the subscription down.
	Subscribe(ctx context.Context, fn func(Change)) (io.Closer, error)
}
