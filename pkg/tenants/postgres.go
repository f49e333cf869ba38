// pkg/tenants/postgres.go
package tenants

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// pgStore implements Store backed by PostgreSQL.
type pgStore struct {
	dbPool *pgxpool.Pool
	log    *zap.SugaredLogger
}

// NewPostgresStore constructs a PostgreSQL-backed tenant store.
func NewPostgresStore(dbPool *pgxpool.Pool, log *zap.SugaredLogger) Store {
	return &pgStore{dbPool: dbPool, log: log}
}

// EnsureSchema creates required tables if they do not already exist.
// Safe to call repeatedly (idempotent).
func EnsureSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	_, err := dbPool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS tenants (
  id uuid PRIMARY KEY,
  email text NOT NULL,
  name text NOT NULL DEFAULT '',
  password_hash text NOT NULL,
  api_key text NOT NULL,
  shopify_domain text,
  shopify_token text,
  created_at timestamptz NOT NULL DEFAULT NOW(),
  updated_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS tenants_email_idx ON tenants (lower(email));
CREATE UNIQUE INDEX IF NOT EXISTS tenants_api_key_idx ON tenants (api_key);
`)
	return err
}

const tenantColumns = `id, email, name, password_hash, api_key, COALESCE(shopify_domain,''), COALESCE(shopify_token,''), created_at, updated_at`

func scanTenant(row pgx.Row) (Tenant, error) {
	var t Tenant
	err := row.Scan(&t.ID, &t.Email, &t.Name, &t.PasswordHash, &t.APIKey,
		&t.ShopifyDomain, &t.ShopifyToken, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, err
	}
	return t, nil
}

func (s *pgStore) FindByEmail(ctx context.Context, email string) (Tenant, error) {
	row := s.dbPool.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE lower(email)=lower($1)`, email)
	return scanTenant(row)
}

func (s *pgStore) FindByID(ctx context.Context, id string) (Tenant, error) {
	row := s.dbPool.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id=$1`, id)
	return scanTenant(row)
}

func (s *pgStore) FindByAPIKey(ctx context.Context, key string) (Tenant, error) {
	row := s.dbPool.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE api_key=$1`, key)
	return scanTenant(row)
}

func (s *pgStore) Create(ctx context.Context, t Tenant) (Tenant, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.APIKey == "" {
		t.APIKey = NewAPIKey()
	}
	row := s.dbPool.QueryRow(ctx, `
INSERT INTO tenants (id, email, name, password_hash, api_key, shopify_domain, shopify_token)
VALUES ($1, lower($2), $3, $4, $5, NULLIF($6,''), NULLIF($7,''))
RETURNING `+tenantColumns,
		t.ID, strings.TrimSpace(t.Email), t.Name, t.PasswordHash, t.APIKey, t.ShopifyDomain, t.ShopifyToken)
	created, err := scanTenant(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Tenant{}, ErrDuplicateEmail
		}
		return Tenant{}, err
	}
	return created, nil
}

func (s *pgStore) UpdateProfile(ctx context.Context, id, name string) (Tenant, error) {
	row := s.dbPool.QueryRow(ctx, `
UPDATE tenants SET name=$2, updated_at=NOW() WHERE id=$1
RETURNING `+tenantColumns, id, name)
	return scanTenant(row)
}

func (s *pgStore) UpdateIntegration(ctx context.Context, id, domain, token string) (Tenant, error) {
	// NULLIF keeps the both-or-neither invariant: empty strings clear
	// both columns in the same statement.
	row := s.dbPool.QueryRow(ctx, `
UPDATE tenants SET shopify_domain=NULLIF($2,''), shopify_token=NULLIF($3,''), updated_at=NOW()
WHERE id=$1
RETURNING `+tenantColumns, id, domain, token)
	return scanTenant(row)
}

func (s *pgStore) RotateAPIKey(ctx context.Context, id string) (string, error) {
	key := NewAPIKey()
	tag, err := s.dbPool.Exec(ctx,
		`UPDATE tenants SET api_key=$2, updated_at=NOW() WHERE id=$1`, id, key)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", ErrNotFound
	}
	return key, nil
}
