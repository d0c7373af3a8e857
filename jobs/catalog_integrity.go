package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	jobmetrics "github.com/meridian-erp/meridian-erp/internal/jobs"
)

// totalTolerance absorbs float rounding when comparing stored sale totals
// against their recomputed line item sums.
const totalTolerance = 0.005

// CatalogIntegrityJob scans for products whose promotion flag and
// promotional price disagree, and for sales whose stored total no longer
// matches the sum of their line items.
type CatalogIntegrityJob struct {
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics *jobmetrics.Metrics
}

func NewCatalogIntegrityJob(pool *pgxpool.Pool, logger *slog.Logger, metrics *jobmetrics.Metrics) *CatalogIntegrityJob {
	return &CatalogIntegrityJob{pool: pool, logger: logger, metrics: metrics}
}

// Handle processes TaskCatalogIntegrityScan tasks.
func (j *CatalogIntegrityJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload CatalogIntegrityScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	tracker := j.metrics.Track("catalog_integrity_scan")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return j.scanPromotions(ctx) })
	g.Go(func() error { return j.scanSaleTotals(ctx) })
	return tracker.End(g.Wait())
}

func (j *CatalogIntegrityJob) scanPromotions(ctx context.Context) error {
	rows, err := j.pool.Query(ctx,
		`SELECT id, name FROM products
		 WHERE (on_promotion AND promo_price IS NULL)
		    OR (NOT on_promotion AND promo_price IS NOT NULL)
		 ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		found++
		j.logger.Warn("promotion mismatch",
			slog.Int64("product_id", id),
			slog.String("name", name))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	j.metrics.AddIssues("promotion_mismatch", found)
	return nil
}

func (j *CatalogIntegrityJob) scanSaleTotals(ctx context.Context) error {
	rows, err := j.pool.Query(ctx,
		`SELECT s.id, s.total,
		        COALESCE(SUM(CASE WHEN p.on_promotion AND p.promo_price IS NOT NULL
		                          THEN p.promo_price ELSE p.price END), 0)
		 FROM sales s
		 LEFT JOIN sale_products sp ON sp.sale_id = s.id
		 LEFT JOIN products p ON p.id = sp.product_id
		 GROUP BY s.id, s.total
		 ORDER BY s.id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		var id int64
		var stored, computed float64
		if err := rows.Scan(&id, &stored, &computed); err != nil {
			return err
		}
		if math.Abs(stored-computed) <= totalTolerance {
			continue
		}
		found++
		j.logger.Warn("sale total drift",
			slog.Int64("sale_id", id),
			slog.Float64("stored", stored),
			slog.Float64("computed", computed))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	j.metrics.AddIssues("sale_total_drift", found)
	return nil
}
