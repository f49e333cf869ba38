package api

import (
	"net/http"
	"strconv"

	"shoplens/pkg/problems"
)

func (a *App) getUsageSummary(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}
	summary, err := a.usage.TenantSummary(r.Context(), tenantFrom(r.Context()).ID, days)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, summary, http.StatusOK)
}

func (a *App) getAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	tenant := tenantFrom(r.Context())
	if !tenant.HasShopifyIntegration() {
		writeJSON(w, errorResponse{
			Type:  problems.Type("incomplete-integration"),
			Error: "shopify integration not configured",
		}, http.StatusBadRequest)
		return
	}
	overview, err := a.shop.ShopOverview(r.Context(), tenant.ShopifyDomain, tenant.ShopifyToken)
	if err != nil {
		a.log.Warnw("shop overview", "tenant", tenant.ID, "err", err)
		writeJSON(w, errorResponse{
			Type:  problems.Type("integration-unreachable"),
			Error: "could not reach Shopify with the stored credentials",
		}, http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]any{"overview": overview}, http.StatusOK)
}
