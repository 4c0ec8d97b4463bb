package admin

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"suseli-shop/internal/localstore"
	"suseli-shop/internal/logger"
)

// Login attempt budget, the strict tier used for auth endpoints.
const (
	attemptLimit = rate.Limit(2)
	attemptBurst = 5
)

// Gate is the client-local admin switch. The PIN ships inside the client
// configuration, so the gate only hides admin views; it is not an
// authentication mechanism and grants nothing the backend enforces.
type Gate struct {
	mu      sync.Mutex
	hash    []byte
	limiter *rate.Limiter
	store   localstore.Store
	isAdmin bool
	log     *zap.Logger
}

// NewGate hashes the configured PIN and restores the persisted flag.
func NewGate(pin string, store localstore.Store) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin pin: %w", err)
	}

	g := &Gate{
		hash:    hash,
		limiter: rate.NewLimiter(attemptLimit, attemptBurst),
		store:   store,
		log:     logger.Named("admin"),
	}

	if v, ok, err := store.Get(localstore.KeyIsAdmin); err == nil && ok && v == "true" {
		g.isAdmin = true
	}
	return g, nil
}

// Login checks the PIN, throttled to keep brute forcing the 4-digit space
// impractical within a session. On success the flag is set and persisted.
func (g *Gate) Login(pin string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.limiter.Allow() {
		g.log.Warn("admin login throttled")
		return false
	}

	if bcrypt.CompareHashAndPassword(g.hash, []byte(pin)) != nil {
		return false
	}

	g.isAdmin = true
	if err := g.store.Set(localstore.KeyIsAdmin, "true"); err != nil {
		g.log.Error("failed to persist admin flag", zap.Error(err))
	}
	return true
}

// Logout clears the flag and its persisted value.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.isAdmin = false
	if err := g.store.Delete(localstore.KeyIsAdmin); err != nil {
		g.log.Error("failed to remove admin flag", zap.Error(err))
	}
}

func (g *Gate) IsAdmin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isAdmin
}
