// internal/shopify/client.go
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const tokenHeader = "X-Shopify-Access-Token"

// Client is a thin Shopify Admin API client. It only performs the
// calls the dashboard needs: a credential health check and a small
// shop/orders snapshot.
type Client struct {
	httpc      *http.Client
	apiVersion string

	// BaseURL overrides the https://{domain} base when set. Used by
	// tests to point at a stub server.
	BaseURL string
}

func New(apiVersion string) *Client {
	return &Client{
		httpc:      &http.Client{Timeout: 10 * time.Second},
		apiVersion: apiVersion,
	}
}

func (c *Client) url(domain, resource string) string {
	base := c.BaseURL
	if base == "" {
		base = "https://" + domain
	}
	return fmt.Sprintf("%s/admin/api/%s/%s", base, c.apiVersion, resource)
}

func (c *Client) get(ctx context.Context, domain, token, resource string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(domain, resource), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(tokenHeader, token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("shopify: %s returned %d", resource, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("shopify: decode %s: %w", resource, err)
	}
	return doc, nil
}

// Ping confirms the credential pair is live by fetching shop.json.
// Any transport error or non-2xx status counts as unreachable.
func (c *Client) Ping(ctx context.Context, domain, token string) error {
	_, err := c.get(ctx, domain, token, "shop.json")
	return err
}
