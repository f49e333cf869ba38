package api

import (
	"net/http"
	"strings"

	"shoplens/internal/analytics"
	"shoplens/internal/auth"
	"shoplens/pkg/tenants"
)

type registerRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	ConfirmPassword    string `json:"confirmPassword"`
	ShopDomain         string `json:"shopDomain"`
	ShopifyAccessToken string `json:"shopifyAccessToken"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tenantSummary struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	HasShopifyIntegration bool   `json:"hasShopifyIntegration"`
}

func summarize(t tenants.Tenant) tenantSummary {
	return tenantSummary{
		ID:                    t.ID,
		Name:                  t.Name,
		Email:                 t.Email,
		HasShopifyIntegration: t.HasShopifyIntegration(),
	}
}

func (a *App) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidation(w, err.Error(), nil)
		return
	}
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "required"
	}
	if !strings.Contains(req.Email, "@") {
		fields["email"] = "must be a valid email address"
	}
	if req.Password == "" {
		fields["password"] = "required"
	}
	if req.ConfirmPassword == "" {
		fields["confirmPassword"] = "required"
	}
	if len(fields) > 0 {
		writeValidation(w, "invalid registration payload", fields)
		return
	}

	tenant, pair, err := a.auth.Register(r.Context(), auth.RegisterInput{
		Name:            strings.TrimSpace(req.Name),
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		ShopDomain:      strings.TrimSpace(req.ShopDomain),
		ShopToken:       strings.TrimSpace(req.ShopifyAccessToken),
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.cookies.SetAuthCookies(w, pair)
	writeJSON(w, map[string]any{"tenant": summarize(tenant)}, http.StatusOK)
}

func (a *App) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidation(w, err.Error(), nil)
		return
	}
	tenant, pair, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		analytics.LoginsTotal.WithLabelValues("failure").Inc()
		a.writeServiceError(w, err)
		return
	}
	analytics.LoginsTotal.WithLabelValues("success").Inc()

	a.cookies.SetAuthCookies(w, pair)
	writeJSON(w, map[string]any{"tenant": summarize(tenant)}, http.StatusOK)
}

func (a *App) refresh(w http.ResponseWriter, r *http.Request) {
	raw := auth.RefreshTokenFromRequest(r)
	if raw == "" {
		analytics.RefreshesTotal.WithLabelValues("failure").Inc()
		writeUnauthorized(w)
		return
	}
	pair, err := a.auth.Refresh(r.Context(), raw)
	if err != nil {
		analytics.RefreshesTotal.WithLabelValues("failure").Inc()
		a.writeServiceError(w, err)
		return
	}
	analytics.RefreshesTotal.WithLabelValues("success").Inc()

	a.cookies.SetAuthCookies(w, pair)
	writeJSON(w, map[string]any{"ok": true}, http.StatusOK)
}

func (a *App) logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.ClearAuthCookies(w)
	writeJSON(w, map[string]any{"ok": true}, http.StatusOK)
}

func (a *App) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"tenant": summarize(tenantFrom(r.Context()))}, http.StatusOK)
}
