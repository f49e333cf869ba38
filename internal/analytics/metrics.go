// internal/analytics/metrics.go
package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplens_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	RefreshesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplens_token_refreshes_total",
		Help: "Refresh-token rotations by outcome.",
	}, []string{"outcome"})

	RefreshReplaysTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shoplens_refresh_replays_total",
		Help: "Refresh tokens rejected because the jti was already spent.",
	})
)

func init() {
	prometheus.MustRegister(LoginsTotal, RefreshesTotal, RefreshReplaysTotal)
}
