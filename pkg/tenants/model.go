package tenants

import "time"

// Tenant is a registered merchant account. Email is unique
// case-insensitively; id and email are immutable after creation.
type Tenant struct {
	ID           string // uuid
	Email        string // stored lowercased
	Name         string
	PasswordHash string // bcrypt, never serialized to clients
	APIKey       string // opaque rotatable key (sk_...)

	// Shopify integration pair: both present or both absent,
	// enforced at update time.
	ShopifyDomain string
	ShopifyToken  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasShopifyIntegration reports whether the tenant has a complete
// credential pair on file.
func (t Tenant) HasShopifyIntegration() bool {
	return t.ShopifyDomain != "" && t.ShopifyToken != ""
}
