// internal/analytics/recorder.go
package analytics

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Recorder persists per-tenant API usage events. A nil pool makes
// every method a no-op so dev bring-up without postgres still works.
type Recorder struct {
	dbPool *pgxpool.Pool
	log    *zap.SugaredLogger
}

func NewRecorder(dbPool *pgxpool.Pool, log *zap.SugaredLogger) *Recorder {
	return &Recorder{dbPool: dbPool, log: log}
}

// EnsureSchema creates the usage table if missing. Idempotent.
func EnsureSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	_, err := dbPool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS usage_events (
  id BIGSERIAL PRIMARY KEY,
  tenant_id uuid NOT NULL,
  method text,
  path text,
  status_code int,
  duration_ms int,
  started_at timestamptz NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS usage_events_tenant_idx ON usage_events (tenant_id, started_at DESC);
`)
	return err
}

// Record inserts one usage event. Failures are logged, never surfaced:
// usage accounting must not break the request that produced it.
func (r *Recorder) Record(ctx context.Context, tenantID, method, path string, status int, duration time.Duration) {
	if r.dbPool == nil || tenantID == "" {
		return
	}
	_, err := r.dbPool.Exec(ctx, `
INSERT INTO usage_events (tenant_id, method, path, status_code, duration_ms)
VALUES ($1, $2, $3, $4, $5)`,
		tenantID, method, path, status, duration.Milliseconds())
	if err != nil {
		r.log.Warnw("usage record", "err", err)
	}
}

type DailyUsage struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
	AvgMs int       `json:"avg_ms"`
	OK    int       `json:"ok"`
}

type Summary struct {
	TotalCount int          `json:"count"`
	TotalOK    int          `json:"ok"`
	AvgMs      int          `json:"avg_ms"`
	Daily      []DailyUsage `json:"daily"`
}

// TenantSummary aggregates a tenant's request counts per day over the
// trailing window.
func (r *Recorder) TenantSummary(ctx context.Context, tenantID string, days int) (Summary, error) {
	out := Summary{Daily: []DailyUsage{}}
	if r.dbPool == nil {
		return out, nil
	}
	if days <= 0 || days > 90 {
		days = 30
	}
	rows, err := r.dbPool.Query(ctx, `
SELECT date_trunc('day', started_at) AS day,
       COUNT(*) AS count,
       COALESCE(AVG(duration_ms)::int,0) AS avg_ms,
       SUM(CASE WHEN status_code BETWEEN 200 AND 299 THEN 1 ELSE 0 END) AS ok
FROM usage_events
WHERE tenant_id = $1 AND started_at > NOW() - make_interval(days => $2)
GROUP BY 1
ORDER BY 1 DESC`, tenantID, days)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var d DailyUsage
		if err := rows.Scan(&d.Day, &d.Count, &d.AvgMs, &d.OK); err != nil {
			return Summary{}, err
		}
		out.Daily = append(out.Daily, d)
	}
	err = r.dbPool.QueryRow(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN status_code BETWEEN 200 AND 299 THEN 1 ELSE 0 END),0),
       COALESCE(AVG(duration_ms)::int,0)
FROM usage_events WHERE tenant_id=$1`, tenantID).
		Scan(&out.TotalCount, &out.TotalOK, &out.AvgMs)
	if err != nil {
		return Summary{}, err
	}
	return out, nil
}
