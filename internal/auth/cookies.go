// internal/auth/cookies.go
package auth

import (
	"net/http"
	"strings"
	"time"
)

const (
	AccessTokenCookie  = "access-token"
	RefreshTokenCookie = "refresh-token"
)

// CookieBinder attaches token pairs to responses and reads them back
// from requests. Both cookies are HTTP-only and SameSite=Lax; Secure is
// config-gated so local dev over plain http still works.
type CookieBinder struct {
	domain     string
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCookieBinder(domain string, secure bool, accessTTL, refreshTTL time.Duration) *CookieBinder {
	return &CookieBinder{
		domain:     domain,
		secure:     secure,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (b *CookieBinder) SetAuthCookies(w http.ResponseWriter, pair TokenPair) {
	b.set(w, AccessTokenCookie, pair.AccessToken, b.accessTTL)
	b.set(w, RefreshTokenCookie, pair.RefreshToken, b.refreshTTL)
}

func (b *CookieBinder) ClearAuthCookies(w http.ResponseWriter) {
	b.set(w, AccessTokenCookie, "", -time.Hour)
	b.set(w, RefreshTokenCookie, "", -time.Hour)
}

func (b *CookieBinder) set(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   b.domain,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   b.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RefreshTokenFromRequest extracts the refresh token by its fixed
// cookie name.
func RefreshTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(RefreshTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// AccessTokenFromRequest extracts the access token from the cookie or,
// failing that, an Authorization: Bearer header.
func AccessTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[len("Bearer "):])
	}
	return ""
}
