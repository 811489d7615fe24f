package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// lowStockDigestSchedule fires once a day at 08:00 server time.
const lowStockDigestSchedule = "0 0 8 * * *"

// LowStockDigestJob periodically sweeps the catalog for products whose
// stock fell below their restocking threshold and sends each affected
// wholesaler one digest notification plus one digest email.
type LowStockDigestJob struct {
	db         *gorm.DB
	dispatcher ports.Dispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewLowStockDigestJob creates the daily low stock digest job.
func NewLowStockDigestJob(db *gorm.DB, dispatcher ports.Dispatcher, logger *slog.Logger) *LowStockDigestJob {
	return &LowStockDigestJob{
		db:         db,
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "low_stock_digest_job"),
	}
}

// Start schedules the digest to run daily.
func (j *LowStockDigestJob) Start() error {
	_, err := j.cron.AddFunc(lowStockDigestSchedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Low stock digest job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock digest job started (running daily)")
	return nil
}

// Stop stops the digest job.
func (j *LowStockDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock digest job stopped")
}

type lowStockRow struct {
	wholesalerID    kernel.UUID
	wholesalerEmail string
	productName     string
	quantity        int
	minThreshold    int
}

// Run executes one digest sweep. Exposed so the composition root can
// trigger an immediate run on demand.
func (j *LowStockDigestJob) Run(ctx context.Context) error {
	rows, err := j.loadLowStockRows(ctx)
	if err != nil {
		return fmt.Errorf("load low stock products: %w", err)
	}

	// Rows arrive ordered by wholesaler, so one pass groups them.
	var (
		current kernel.UUID
		email   string
		batch   []lowStockRow
	)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		j.sendDigest(ctx, current, email, batch)
		batch = batch[:0]
	}

	for _, row := range rows {
		if !row.wholesalerID.IsEqual(current) {
			flush()
			current = row.wholesalerID
			email = row.wholesalerEmail
		}
		batch = append(batch, row)
	}
	flush()

	return nil
}

func (j *LowStockDigestJob) loadLowStockRows(ctx context.Context) ([]lowStockRow, error) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT wu.id, wu.email, p.name, p.quantity, p.min_threshold
		FROM products p
		JOIN users wu ON wu.id = p.wholesaler_id
		WHERE p.active = TRUE
		  AND wu.active = TRUE
		  AND p.quantity < p.min_threshold
		ORDER BY wu.id, p.quantity, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]lowStockRow, 0)
	for rows.Next() {
		var id uuid.UUID
		var row lowStockRow

		if err = rows.Scan(&id, &row.wholesalerEmail, &row.productName, &row.quantity, &row.minThreshold); err != nil {
			return nil, err
		}
		if row.wholesalerID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (j *LowStockDigestJob) sendDigest(ctx context.Context, wholesalerID kernel.UUID, email string, batch []lowStockRow) {
	header := "Low stock digest"
	body := fmt.Sprintf("%d product(s) need restocking", len(batch))
	j.dispatcher.Notify(ctx, wholesalerID, header, body)

	var html strings.Builder
	html.WriteString("<h3>Products below their restocking threshold</h3><ul>")
	for _, row := range batch {
		html.WriteString(fmt.Sprintf(
			"<li>%s: %d left (threshold %d)</li>",
			row.productName, row.quantity, row.minThreshold,
		))
	}
	html.WriteString("</ul>")
	j.dispatcher.SendEmail(ctx, email, "Daily Low Stock Digest", html.String())

	j.logger.InfoContext(ctx, "Low stock digest sent", "wholesaler_id", wholesalerID.String(), "products", len(batch))
}
