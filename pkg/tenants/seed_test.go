package tenants_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shoplens/pkg/logger"
	"shoplens/pkg/tenants"
)

const seedYAML = `
- email: owner@acme.com
  name: Acme
  password: longenough1
  shopify_domain: acme.myshopify.com
  shopify_token: shpat_abc
- email: ""
  password: skipped-no-email
- email: second@acme.com
  name: Second
  password: longenough2
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedFromFile(t *testing.T) {
	store := tenants.NewMemoryStore()
	path := writeSeedFile(t, seedYAML)

	require.NoError(t, tenants.SeedFromFile(context.Background(), store, logger.Nop(), path))

	acme, err := store.FindByEmail(context.Background(), "owner@acme.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", acme.Name)
	assert.True(t, acme.HasShopifyIntegration())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acme.PasswordHash), []byte("longenough1")))

	_, err = store.FindByEmail(context.Background(), "second@acme.com")
	assert.NoError(t, err)
}

func TestSeedFromFileIdempotent(t *testing.T) {
	store := tenants.NewMemoryStore()
	path := writeSeedFile(t, seedYAML)
	ctx := context.Background()

	require.NoError(t, tenants.SeedFromFile(ctx, store, logger.Nop(), path))
	first, err := store.FindByEmail(ctx, "owner@acme.com")
	require.NoError(t, err)

	require.NoError(t, tenants.SeedFromFile(ctx, store, logger.Nop(), path))
	second, err := store.FindByEmail(ctx, "owner@acme.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestSeedFromFileEmptyPathNoop(t *testing.T) {
	assert.NoError(t, tenants.SeedFromFile(context.Background(), tenants.NewMemoryStore(), logger.Nop(), ""))
}

func TestSeedFromFileBadYAML(t *testing.T) {
	path := writeSeedFile(t, "{not yaml")
	err := tenants.SeedFromFile(context.Background(), tenants.NewMemoryStore(), logger.Nop(), path)
	assert.Error(t, err)
}
