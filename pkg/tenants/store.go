package tenants

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var (
	ErrNotFound       = errors.New("tenant not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store persists tenant records. Uniqueness (email, api key) is
// enforced by the backing storage, not by callers.
type Store interface {
	FindByEmail(ctx context.Context, email string) (Tenant, error)
	FindByID(ctx context.Context, id string) (Tenant, error)
	FindByAPIKey(ctx context.Context, key string) (Tenant, error)
	Create(ctx context.Context, t Tenant) (Tenant, error)
	UpdateProfile(ctx context.Context, id, name string) (Tenant, error)
	// UpdateIntegration sets both credential fields together; passing
	// empty strings clears both. Never partially set.
	UpdateIntegration(ctx context.Context, id, domain, token string) (Tenant, error)
	// RotateAPIKey replaces the key in a single atomic update and
	// returns the new value. The old key stops authenticating at once.
	RotateAPIKey(ctx context.Context, id string) (string, error)
}

// NewAPIKey generates an opaque tenant API key.
func NewAPIKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("tenants: crypto/rand unavailable: " + err.Error())
	}
	return "sk_" + hex.EncodeToString(b)
}
