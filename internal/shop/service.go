package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"suseli-shop/internal/admin"
	"suseli-shop/internal/backend"
	"suseli-shop/internal/cart"
	"suseli-shop/internal/catalog"
	"suseli-shop/internal/config"
	"suseli-shop/internal/localstore"
	"suseli-shop/internal/logger"
	"suseli-shop/internal/notify"
	"suseli-shop/internal/orders"
)

// Shop is the single source of truth for cart, orders and the admin
// session. The presentation layer only ever goes through its methods.
//
// One mutex guards all state: the change-notification callback runs on the
// subscription goroutine, so the browser's single-thread assumption does
// not carry over.
type Shop struct {
	backend  backend.Backend
	store    localstore.Store
	notifier notify.Notifier
	gate     *admin.Gate
	log      *zap.Logger
	taxRate  float64

	mu         sync.Mutex
	cart       *cart.Cart
	orders     []orders.Order
	myOrderIDs []string
	loading    bool
	appliedSeq uint64

	fetchSeq atomic.Uint64
	cancel   context.CancelFunc
	sub      io.Closer
}

// New restores cart, order-id list and admin flag from the local store.
// Missing or unparsable saved state falls back to empty defaults.
func New(b backend.Backend, store localstore.Store, notifier notify.Notifier, cfg *config.Config) (*Shop, error) {
	gate, err := admin.NewGate(cfg.AdminPIN, store)
	if err != nil {
		return nil, err
	}

	s := &Shop{
		backend:  b,
		store:    store,
		notifier: notifier,
		gate:     gate,
		log:      logger.Named("shop"),
		taxRate:  cfg.TaxRate,
		loading:  true,
	}

	if raw, ok, err := store.Get(localstore.KeyCart); err == nil && ok {
		s.cart = cart.FromSnapshot([]byte(raw))
	} else {
		s.cart = cart.New()
	}

	if raw, ok, err := store.Get(localstore.KeyMyOrderIDs); err == nil && ok {
		if err := json.Unmarshal([]byte(raw), &s.myOrderIDs); err != nil {
			s.log.Warn("unparsable saved order ids, starting empty")
			s.myOrderIDs = nil
		}
	}

	return s, nil
}

// Start launches the initial order fetch and the standing change
// subscription. Each pushed change triggers a full re-fetch; at this data
// scale correctness beats incremental patching.
func (s *Shop) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go s.refresh(ctx)

	sub, err := s.backend.Subscribe(ctx, func(backend.Change) {
		s.refresh(ctx)
	})
	if err != nil {
		s.log.Error("failed to subscribe to order changes", zap.Error(err))
		s.notifier.Error("Failed to load orders")
		return err
	}
	s.sub = sub
	return nil
}

// Close cancels the subscription. In-flight requests are left to finish or
// fail on their own.
func (s *Shop) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.sub != nil {
		return s.sub.Close()
	}
	return nil
}

// refresh fetches the authoritative order list and joins in the items.
// Overlapping refreshes settle last-fetch-wins: a fetch that started
// before one that already applied is discarded.
func (s *Shop) refresh(ctx context.Context) {
	seq := s.fetchSeq.Add(1)

	rows, err := s.backend.FetchOrders(ctx)
	var items []backend.ItemRow
	if err == nil {
		items, err = s.backend.FetchItems(ctx)
	}

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.log.Error("failed to load orders", zap.Error(err))
		s.notifier.Error("Failed to load orders")
		return
	}
	if seq < s.appliedSeq {
		s.mu.Unlock()
		return
	}
	s.appliedSeq = seq
	s.orders = orders.FromRows(rows, items)
	s.mu.Unlock()
}

// Loading reports whether the first order fetch has settled yet.
func (s *Shop) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AddToCart increments the product's line, or starts a new one.
func (s *Shop) AddToCart(p catalog.Product) {
	s.mu.Lock()
	updated := s.cart.Add(p)
	s.persistCartLocked()
	s.mu.Unlock()

	if updated {
		s.notifier.Success(fmt.Sprintf("Updated quantity for %s", p.Name))
	} else {
		s.notifier.Success(fmt.Sprintf("Added %s to cart", p.Name))
	}
}

// RemoveFromCart drops the product's line. Absent ids still notify.
func (s *Shop) RemoveFromCart(productID int) {
	s.mu.Lock()
	s.cart.Remove(productID)
	s.persistCartLocked()
	s.mu.Unlock()

	s.notifier.Error("Removed item from cart")
}

// UpdateQuantity adjusts a line by delta, clamped at 1. Lines leave the
// cart only through RemoveFromCart.
func (s *Shop) UpdateQuantity(productID, delta int) {
	s.mu.Lock()
	s.cart.UpdateQuantity(productID, delta)
	s.persistCartLocked()
	s.mu.Unlock()
}

// ClearCart empties the cart unconditionally.
func (s *Shop) ClearCart() {
	s.mu.Lock()
	s.cart.Clear()
	s.persistCartLocked()
	s.mu.Unlock()
}

// Cart returns the current line items.
func (s *Shop) Cart() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartUnits is the badge count: total items across all lines.
func (s *Shop) CartUnits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Units()
}

// CartTotals recomputes subtotal, tax and total from the current lines.
func (s *Shop) CartTotals() (cart.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Totals(s.taxRate)
}

// PlaceOrder submits the cart as a new order. On any backend failure the
// local state is left untouched; the order may exist partially in the
// backend, which is accepted (no compensating transaction).
func (s *Shop) PlaceOrder(ctx context.Context, d Details) (*Receipt, error) {
	s.mu.Lock()
	lines := s.cart.Lines()
	totals, err := s.cart.Totals(s.taxRate)
	s.mu.Unlock()

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}
	if err != nil {
		s.log.Error("failed to total cart", zap.Error(err))
		return nil, err
	}

	orderID := uuid.NewString()
	log := s.log.With(zap.String("order_id", orderID))

	row := backend.OrderRow{
		ID:           orderID,
		CustomerName: d.CustomerName,
		PhoneNumber:  d.PhoneNumber,
		Total:        totals.Total,
		Status:       string(orders.StatusPending),
		DiscountCode: d.DiscountCode,
	}
	if err := s.backend.CreateOrder(ctx, row); err != nil {
		log.Error("failed to create order", zap.Error(err))
		s.notifier.Error("Failed to place order. Please try again.")
		return nil, err
	}

	itemRows := make([]backend.ItemRow, 0, len(lines))
	for _, l := range lines {
		itemRows = append(itemRows, backend.ItemRow{
			OrderID:     orderID,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Image:       l.Image,
		})
	}
	if err := s.backend.CreateItems(ctx, itemRows); err != nil {
		log.Error("failed to create order items", zap.Error(err))
		s.notifier.Error("Failed to place order. Please try again.")
		return nil, err
	}

	s.mu.Lock()
	s.myOrderIDs = append([]string{orderID}, s.myOrderIDs...)
	s.persistMyOrderIDsLocked()
	s.cart.Clear()
	s.persistCartLocked()
	s.mu.Unlock()

	log.Info("order placed", zap.Int("items", len(itemRows)), zap.Float64("total", totals.Total))
	s.notifier.Success("Order placed successfully!")

	return &Receipt{
		ID:           orderID,
		Date:         time.Now(),
		Status:       orders.StatusPending,
		Items:        lines,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		CustomerName: d.CustomerName,
		PhoneNumber:  d.PhoneNumber,
		DiscountCode: d.DiscountCode,
	}, nil
}

// UpdateOrderStatus changes one order's status. Admin context is enforced
// by the presentation layer; the visible list settles through the next
// change notification.
func (s *Shop) UpdateOrderStatus(ctx context.Context, orderID string, status orders.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", orders.ErrInvalidStatus, status)
	}

	if err := s.backend.UpdateStatus(ctx, orderID, string(status)); err != nil {
		s.log.Error("failed to update order status", zap.String("order_id", orderID), zap.Error(err))
		s.notifier.Error("Failed to update status")
		return err
	}

	s.notifier.Success(fmt.Sprintf("Order marked as %s", status))
	return nil
}

// DeleteOrder removes an order from the backend and, on success, from the
// local order-id list.
func (s *Shop) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.backend.DeleteOrder(ctx, orderID); err != nil {
		s.log.Error("failed to delete order", zap.String("order_id", orderID), zap.Error(err))
		s.notifier.Error("Failed to delete order")
		return err
	}

	s.mu.Lock()
	for i, id := range s.myOrderIDs {
		if id == orderID {
			s.myOrderIDs = append(s.myOrderIDs[:i], s.myOrderIDs[i+1:]...)
			s.persistMyOrderIDsLocked()
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Order deleted")
	return nil
}

// Orders returns the authoritative order list, newest first.
func (s *Shop) Orders() []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]orders.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// MyOrders derives this device's orders from the global list and the
// locally-saved id set. It is recomputed on every call; there is no other
// notion of ownership.
func (s *Shop) MyOrders() []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	mine := make(map[string]bool, len(s.myOrderIDs))
	for _, id := range s.myOrderIDs {
		mine[id] = true
	}

	var out []orders.Order
	for _, o := range s.orders {
		if mine[o.ID] {
			out = append(out, o)
		}
	}
	return out
}

// FindOrder resolves a tracking query (full order id or id suffix).
func (s *Shop) FindOrder(query string) (orders.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return orders.Find(s.orders, query)
}

// AdminLogin checks the PIN against the gate and notifies either way.
func (s *Shop) AdminLogin(pin string) bool {
	if !s.gate.Login(pin) {
		s.notifier.Error("Invalid PIN")
		return false
	}
	s.notifier.Success("Welcome back, Admin!")
	return true
}

func (s *Shop) AdminLogout() {
	s.gate.Logout()
	s.notifier.Success("Logged out")
}

func (s *Shop) IsAdmin() bool {
	return s.gate.IsAdmin()
}

func (s *Shop) persistCartLocked() {
	data, err := s.cart.Snapshot()
	if err != nil {
		s.log.Error("failed to encode cart", zap.Error(err))
		return
	}
	if err := s.store.Set(localstore.KeyCart, string(data)); err != nil {
		s.log.Error("failed to persist cart", zap.Error(err))
	}
}

func (s *Shop) persistMyOrderIDsLocked() {
	ids := s.myOrderIDs
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		s.log.Error("failed to encode order ids", zap.Error(err))
		return
	}
	if err := s.store.Set(localstore.KeyMyOrderIDs, string(data)); err != nil {
		s.log.Error("failed to persist order ids", zap.Error(err))
	}
}
