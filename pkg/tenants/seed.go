// pkg/tenants/seed.go
package tenants

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedEntry is one tenant in the dev seed file.
type SeedEntry struct {
	Email         string `yaml:"email"`
	Name          string `yaml:"name"`
	Password      string `yaml:"password"`
	ShopifyDomain string `yaml:"shopify_domain"`
	ShopifyToken  string `yaml:"shopify_token"`
}

// SeedFromFile ingests initial tenants from a YAML file. Existing
// emails are skipped, so the seed is safe to apply repeatedly.
func SeedFromFile(ctx context.Context, store Store, log *zap.SugaredLogger, path string) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []SeedEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("yaml parse: %w", err)
	}
	for _, e := range entries {
		if e.Email == "" || e.Password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = store.Create(ctx, Tenant{
			Email:         e.Email,
			Name:          e.Name,
			PasswordHash:  string(hash),
			ShopifyDomain: e.ShopifyDomain,
			ShopifyToken:  e.ShopifyToken,
		})
		if errors.Is(err, ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			return err
		}
		log.Infow("seeded tenant", "email", e.Email)
	}
	return nil
}
