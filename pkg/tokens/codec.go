// pkg/tokens/codec.go
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Kind discriminates access tokens from refresh tokens. A token issued
// as one kind never verifies as the other.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

const typeClaim = "typ"

// ErrInvalidToken is the single failure mode of Verify. Signature,
// expiry and type mismatches all collapse into it so callers cannot
// leak why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified payload of a token.
type Claims struct {
	TenantID  string
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec signs and verifies tenant session tokens with a process-wide
// symmetric key. Read-only after construction.
type Codec struct {
	key        jwk.Key
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret []byte, issuer string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("tokens: empty signing secret")
	}
	key, err := jwk.FromRaw(secret)
	if err != nil {
		return nil, fmt.Errorf("tokens: signing key: %w", err)
	}
	return &Codec{
		key:        key,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// TTL returns the configured lifetime for the given kind.
func (c *Codec) TTL(kind Kind) time.Duration {
	if kind == KindRefresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

// Issue produces a signed token carrying the tenant id, kind, issuance
// time and expiry. The signing key is never embedded in the token.
func (c *Codec) Issue(tenantID string, kind Kind) (string, error) {
	now := time.Now()
	tok, err := jwt.NewBuilder().
		Issuer(c.issuer).
		Subject(tenantID).
		JwtID(uuid.NewString()).
		IssuedAt(now).
		Expiration(now.Add(c.TTL(kind))).
		Claim(typeClaim, string(kind)).
		Build()
	if err != nil {
		return "", fmt.Errorf("tokens: build: %w", err)
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, c.key))
	if err != nil {
		return "", fmt.Errorf("tokens: sign: %w", err)
	}
	return string(signed), nil
}

// Verify parses raw and checks signature, expiry, issuer and kind.
// Any failure yields ErrInvalidToken.
func (c *Codec) Verify(raw string, kind Kind) (Claims, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, c.key),
		jwt.WithIssuer(c.issuer),
		jwt.WithValidate(true),
	)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	typ, ok := tok.Get(typeClaim)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	if s, _ := typ.(string); s != string(kind) {
		return Claims{}, ErrInvalidToken
	}
	if tok.Subject() == "" {
		return Claims{}, ErrInvalidToken
	}
	return Claims{
		TenantID:  tok.Subject(),
		JTI:       tok.JwtID(),
		IssuedAt:  tok.IssuedAt(),
		ExpiresAt: tok.Expiration(),
	}, nil
}
