// internal/auth/service.go
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shoplens/internal/analytics"
	"shoplens/pkg/tenants"
	"shoplens/pkg/tokens"
)

const minPasswordLength = 8

// IntegrationChecker confirms a Shopify credential pair is live before
// it is persisted. Implemented by internal/shopify.
type IntegrationChecker interface {
	Ping(ctx context.Context, domain, token string) error
}

// TokenPair is an access/refresh token pair bound to one tenant.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	ShopDomain      string
	ShopToken       string
}

// Service orchestrates registration, login, refresh and API-key
// rotation on top of the tenant store and token codec.
type Service struct {
	store  tenants.Store
	codec  *tokens.Codec
	replay ReplayStore
	shop   IntegrationChecker
	log    *zap.SugaredLogger

	// dummyHash absorbs a bcrypt compare for unknown emails so login
	// latency does not reveal whether the account exists.
	dummyHash []byte
}

func NewService(store tenants.Store, codec *tokens.Codec, replay ReplayStore, shop IntegrationChecker, log *zap.SugaredLogger) *Service {
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalw("bcrypt dummy hash", "err", err)
	}
	return &Service{
		store:     store,
		codec:     codec,
		replay:    replay,
		shop:      shop,
		log:       log,
		dummyHash: dummy,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (tenants.Tenant, TokenPair, error) {
	if in.Password != in.ConfirmPassword {
		return tenants.Tenant{}, TokenPair{}, ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return tenants.Tenant{}, TokenPair{}, ErrWeakPassword
	}
	if err := s.checkIntegrationPair(ctx, in.ShopDomain, in.ShopToken); err != nil {
		return tenants.Tenant{}, TokenPair{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return tenants.Tenant{}, TokenPair{}, err
	}

	tenant, err := s.store.Create(ctx, tenants.Tenant{
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Name:          in.Name,
		PasswordHash:  string(hash),
		ShopifyDomain: in.ShopDomain,
		ShopifyToken:  in.ShopToken,
	})
	if err != nil {
		return tenants.Tenant{}, TokenPair{}, err
	}

	pair, err := s.issuePair(tenant.ID)
	if err != nil {
		return tenants.Tenant{}, TokenPair{}, err
	}
	s.log.Infow("tenant registered", "tenant", tenant.ID)
	return tenant, pair, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (tenants.Tenant, TokenPair, error) {
	tenant, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, tenants.ErrNotFound) {
			// burn a compare so the miss costs the same as a mismatch
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return tenants.Tenant{}, TokenPair{}, ErrInvalidCredentials
		}
		return tenants.Tenant{}, TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(password)); err != nil {
		return tenants.Tenant{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issuePair(tenant.ID)
	if err != nil {
		return tenants.Tenant{}, TokenPair{}, err
	}
	return tenant, pair, nil
}

// Refresh rotates a refresh token into a fresh pair. Refresh tokens are
// single-use: the jti is marked consumed before new tokens are issued,
// and replays are rejected as invalid.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.codec.Verify(refreshToken, tokens.KindRefresh)
	if err != nil {
		return TokenPair{}, tokens.ErrInvalidToken
	}

	fresh, err := s.replay.Consume(ctx, claims.JTI, time.Until(claims.ExpiresAt))
	if err != nil {
		return TokenPair{}, err
	}
	if !fresh {
		analytics.RefreshReplaysTotal.Inc()
		s.log.Warnw("refresh token replay rejected", "tenant", claims.TenantID)
		return TokenPair{}, tokens.ErrInvalidToken
	}

	if _, err := s.store.FindByID(ctx, claims.TenantID); err != nil {
		return TokenPair{}, tokens.ErrInvalidToken
	}

	return s.issuePair(claims.TenantID)
}

func (s *Service) RegenerateAPIKey(ctx context.Context, tenantID string) (string, error) {
	key, err := s.store.RotateAPIKey(ctx, tenantID)
	if err != nil {
		return "", err
	}
	s.log.Infow("api key rotated", "tenant", tenantID)
	return key, nil
}

// UpdateSettings applies a partial settings patch. Integration fields
// obey the both-or-neither rule; a non-empty pair is verified live
// before anything is persisted, and an empty pair clears the
// integration. A rejected patch writes nothing, including the name.
func (s *Service) UpdateSettings(ctx context.Context, tenantID string, name, domain, token *string) (tenants.Tenant, error) {
	tenant, err := s.store.FindByID(ctx, tenantID)
	if err != nil {
		return tenants.Tenant{}, err
	}

	var d, tok string
	patchIntegration := domain != nil || token != nil
	if patchIntegration {
		if domain == nil || token == nil {
			return tenants.Tenant{}, ErrIncompleteIntegration
		}
		d, tok = strings.TrimSpace(*domain), strings.TrimSpace(*token)
		if (d == "") != (tok == "") {
			return tenants.Tenant{}, ErrIncompleteIntegration
		}
		if err := s.checkIntegrationPair(ctx, d, tok); err != nil {
			return tenants.Tenant{}, err
		}
	}

	if name != nil {
		tenant, err = s.store.UpdateProfile(ctx, tenantID, *name)
		if err != nil {
			return tenants.Tenant{}, err
		}
	}
	if patchIntegration {
		tenant, err = s.store.UpdateIntegration(ctx, tenantID, d, tok)
		if err != nil {
			return tenants.Tenant{}, err
		}
	}
	return tenant, nil
}

func (s *Service) checkIntegrationPair(ctx context.Context, domain, token string) error {
	if domain == "" && token == "" {
		return nil
	}
	if domain == "" || token == "" {
		return ErrIncompleteIntegration
	}
	if err := s.shop.Ping(ctx, domain, token); err != nil {
		return &IntegrationUnreachableError{Err: err}
	}
	return nil
}

func (s *Service) issuePair(tenantID string) (TokenPair, error) {
	access, err := s.codec.Issue(tenantID, tokens.KindAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.codec.Issue(tenantID, tokens.KindRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
