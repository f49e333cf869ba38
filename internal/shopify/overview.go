// internal/shopify/overview.go
package shopify

import (
	"context"
	"strconv"
	"strings"

	jmes "github.com/jmespath/go-jmespath"
)

// Overview is a small storefront snapshot for the analytics API.
type Overview struct {
	ShopName     string  `json:"shopName"`
	Currency     string  `json:"currency"`
	Plan         string  `json:"plan"`
	OrderCount   int     `json:"orderCount"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ShopOverview fetches shop.json plus recent orders and plucks the
// fields the dashboard cares about out of the raw payloads.
func (c *Client) ShopOverview(ctx context.Context, domain, token string) (Overview, error) {
	shopDoc, err := c.get(ctx, domain, token, "shop.json")
	if err != nil {
		return Overview{}, err
	}
	ordersDoc, err := c.get(ctx, domain, token, "orders.json?status=any&limit=50")
	if err != nil {
		return Overview{}, err
	}

	var o Overview
	o.ShopName = searchString(shopDoc, "shop.name")
	o.Currency = searchString(shopDoc, "shop.currency")
	o.Plan = searchString(shopDoc, "shop.plan_name")

	prices, _ := jmes.Search("orders[].total_price", ordersDoc)
	if arr, ok := prices.([]any); ok {
		o.OrderCount = len(arr)
		for _, p := range arr {
			o.TotalRevenue += toFloat(p)
		}
	}
	return o, nil
}

func searchString(doc map[string]any, path string) string {
	v, err := jmes.Search(path, doc)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
