package api

import (
	"net/http"

	"shoplens/pkg/tenants"
)

type settingsBody struct {
	Name               *string `json:"name"`
	ShopDomain         *string `json:"shopDomain"`
	ShopifyAccessToken *string `json:"shopifyAccessToken"`
}

type settingsView struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	ShopDomain            string `json:"shopDomain"`
	HasShopifyIntegration bool   `json:"hasShopifyIntegration"`
}

func viewSettings(t tenants.Tenant) settingsView {
	return settingsView{
		Name:                  t.Name,
		Email:                 t.Email,
		ShopDomain:            t.ShopifyDomain,
		HasShopifyIntegration: t.HasShopifyIntegration(),
	}
}

func (a *App) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"settings": viewSettings(tenantFrom(r.Context()))}, http.StatusOK)
}

func (a *App) putSettings(w http.ResponseWriter, r *http.Request) {
	var b settingsBody
	if err := decodeJSON(r, &b); err != nil {
		writeValidation(w, err.Error(), nil)
		return
	}
	tenant, err := a.auth.UpdateSettings(r.Context(), tenantFrom(r.Context()).ID, b.Name, b.ShopDomain, b.ShopifyAccessToken)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"settings": viewSettings(tenant)}, http.StatusOK)
}

func (a *App) regenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	key, err := a.auth.RegenerateAPIKey(r.Context(), tenantFrom(r.Context()).ID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]any{"apiKey": key}, http.StatusOK)
}
