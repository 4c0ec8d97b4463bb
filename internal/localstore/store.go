package localstore

// Keys used by the shop container. Mirrors the browser localStorage layout
// this state container replaces.
const (
	KeyCart       = "cart"
	KeyMyOrderIDs = "myOrderIds"
	KeyIsAdmin    = "isAdmin"
)

// Store is durable device-local key-value storage surviving process
// restarts. Implementations must tolerate concurrent callers.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(key string) error
}
