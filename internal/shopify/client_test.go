package shopify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplens/internal/shopify"
)

const goodToken = "shpat_good"

func stubShopify(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/api/2024-01/shop.json", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Shopify-Access-Token") != goodToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shop":{"name":"Acme Storefront","currency":"USD","plan_name":"basic"}}`))
	})
	mux.HandleFunc("/admin/api/2024-01/orders.json", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Shopify-Access-Token") != goodToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orders":[{"total_price":"10.50"},{"total_price":"4.25"},{"total_price":"100.00"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newStubClient(t *testing.T) *shopify.Client {
	t.Helper()
	c := shopify.New("2024-01")
	c.BaseURL = stubShopify(t).URL
	return c
}

func TestPing(t *testing.T) {
	c := newStubClient(t)

	assert.NoError(t, c.Ping(context.Background(), "acme.myshopify.com", goodToken))
	assert.Error(t, c.Ping(context.Background(), "acme.myshopify.com", "shpat_bad"))
}

func TestPingUnreachableHost(t *testing.T) {
	c := shopify.New("2024-01")
	c.BaseURL = "http://127.0.0.1:1"
	assert.Error(t, c.Ping(context.Background(), "acme.myshopify.com", goodToken))
}

func TestShopOverview(t *testing.T) {
	c := newStubClient(t)

	o, err := c.ShopOverview(context.Background(), "acme.myshopify.com", goodToken)
	require.NoError(t, err)
	assert.Equal(t, "Acme Storefront", o.ShopName)
	assert.Equal(t, "USD", o.Currency)
	assert.Equal(t, "basic", o.Plan)
	assert.Equal(t, 3, o.OrderCount)
	assert.InDelta(t, 114.75, o.TotalRevenue, 0.001)
}

func TestShopOverviewBadToken(t *testing.T) {
	c := newStubClient(t)

	_, err := c.ShopOverview(context.Background(), "acme.myshopify.com", "shpat_bad")
	assert.Error(t, err)
}
