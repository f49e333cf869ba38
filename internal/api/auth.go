package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"shoplens/internal/auth"
	"shoplens/pkg/tenants"
	"shoplens/pkg/tokens"
)

type ctxTenantKey struct{}

// requireTenant guards dashboard routes: access token from cookie or
// bearer header, verified as type=access, tenant loaded by the decoded
// id. Any failure is a uniform 401.
func (a *App) requireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := auth.AccessTokenFromRequest(r)
		if raw == "" {
			writeUnauthorized(w)
			return
		}
		claims, err := a.codec.Verify(raw, tokens.KindAccess)
		if err != nil {
			writeUnauthorized(w)
			return
		}
		tenant, err := a.store.FindByID(r.Context(), claims.TenantID)
		if err != nil {
			writeUnauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ctxTenantKey{}, tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAPIKey guards the storefront analytics surface with the
// X-API-Key header. The lookup is by exact key; the extra compare
// keeps the check constant-time against the stored value.
func (a *App) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get("X-API-Key"))
		if key == "" {
			writeUnauthorized(w)
			return
		}
		tenant, err := a.store.FindByAPIKey(r.Context(), key)
		if err != nil {
			writeUnauthorized(w)
			return
		}
		if subtle.ConstantTimeCompare([]byte(tenant.APIKey), []byte(key)) != 1 {
			writeUnauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ctxTenantKey{}, tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tenantFrom(ctx context.Context) tenants.Tenant {
	if v := ctx.Value(ctxTenantKey{}); v != nil {
		return v.(tenants.Tenant)
	}
	return tenants.Tenant{}
}

// recordUsage writes one usage event per guarded request.
func (a *App) recordUsage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		a.usage.Record(r.Context(), tenantFrom(r.Context()).ID, r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
