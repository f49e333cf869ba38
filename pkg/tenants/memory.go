// pkg/tenants/memory.go
package tenants

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is the in-memory Store used for dev bring-up and tests.
type memStore struct {
	mu   sync.RWMutex
	byID map[string]Tenant
}

func NewMemoryStore() Store {
	return &memStore{byID: map[string]Tenant{}}
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, t := range m.byID {
		if t.Email == needle {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

func (m *memStore) FindByID(ctx context.Context, id string) (Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return Tenant{}, ErrNotFound
}

func (m *memStore) FindByAPIKey(ctx context.Context, key string) (Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.byID {
		if t.APIKey == key {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

func (m *memStore) Create(ctx context.Context, t Tenant) (Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.Email = strings.ToLower(strings.TrimSpace(t.Email))
	for _, existing := range m.byID {
		if existing.Email == t.Email {
			return Tenant{}, ErrDuplicateEmail
		}
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.APIKey == "" {
		t.APIKey = NewAPIKey()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	m.byID[t.ID] = t
	return t, nil
}

func (m *memStore) UpdateProfile(ctx context.Context, id, name string) (Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[id]
	if !ok {
		return Tenant{}, ErrNotFound
	}
	t.Name = name
	t.UpdatedAt = time.Now()
	m.byID[id] = t
	return t, nil
}

func (m *memStore) UpdateIntegration(ctx context.Context, id, domain, token string) (Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[id]
	if !ok {
		return Tenant{}, ErrNotFound
	}
	t.ShopifyDomain = domain
	t.ShopifyToken = token
	t.UpdatedAt = time.Now()
	m.byID[id] = t
	return t, nil
}

func (m *memStore) RotateAPIKey(ctx context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[id]
	if !ok {
		return "", ErrNotFound
	}
	t.APIKey = NewAPIKey()
	t.UpdatedAt = time.Now()
	m.byID[id] = t
	return t.APIKey, nil
}
