package persistence

import (
	"context"
	"time"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/labelworks/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStoreSummaryRepository implements billing.StoreSummaryRepository using GORM
type GormStoreSummaryRepository struct {
	db *gorm.DB
}

// NewGormStoreSummaryRepository creates a new GormStoreSummaryRepository
func NewGormStoreSummaryRepository(db *gorm.DB) *GormStoreSummaryRepository {
	return &GormStoreSummaryRepository{db: db}
}

// ReplaceMonth deletes every summary row for the company inside the month's
// half-open date range and bulk-inserts the replacement records. Run it on a
// transaction handle; readers must never observe the deleted-but-not-yet-
// inserted state.
func (r *GormStoreSummaryRepository) ReplaceMonth(ctx context.Context, companyCode string, month billing.Month, records []*billing.StoreSummary) error {
	start, end := month.Range()

	if err := r.db.WithContext(ctx).
		Where("company_code = ? AND date >= ? AND date < ?", companyCode, start, end).
		Delete(&models.StoreSummaryModel{}).Error; err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}

	rows := make([]models.StoreSummaryModel, len(records))
	for i, rec := range records {
		rows[i].FromDomain(rec)
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 500).Error
}

// FindByCompanyAndRange returns the summaries for a company inside the
// half-open [start, end) date range, ordered by date then store code.
func (r *GormStoreSummaryRepository) FindByCompanyAndRange(ctx context.Context, companyCode string, start, end time.Time) ([]billing.StoreSummary, error) {
	var summaryModels []models.StoreSummaryModel
	if err := r.db.WithContext(ctx).
		Where("company_code = ? AND date >= ? AND date < ?", companyCode, start, end).
		Order("date ASC, store_code ASC").
		Find(&summaryModels).Error; err != nil {
		return nil, err
	}

	summaries := make([]billing.StoreSummary, len(summaryModels))
	for i, model := range summaryModels {
		summaries[i] = *model.ToDomain()
	}
	return summaries, nil
}

// usageReportRow is the scan target for the Summarize query. The start date
// comes back as a formatted string because aggregate expressions lose their
// column type on SQLite.
type usageReportRow struct {
	StoreCode             string
	StoreName             *string
	StartDateOfUse        string
	UsageDays             int
	AvgLabelCount         decimal.NullDecimal
	AvgProductUpdateCount decimal.NullDecimal
}

// Summarize computes the per-store usage window for the target month.
// The first day of use anchors on the company's full history, so a store
// with no usage inside the month still appears with zero usage days and
// NULL averages. Usage days and averages count only days whose label total
// is positive.
func (r *GormStoreSummaryRepository) Summarize(ctx context.Context, companyCode string, month billing.Month) ([]billing.StoreUsageReport, error) {
	start, end := month.Range()

	startExpr := "TO_CHAR(MIN(date), 'YYYY-MM-DD')"
	if r.db.Dialector.Name() == "sqlite" {
		startExpr = "strftime('%Y-%m-%d', MIN(date))"
	}

	query := `
		WITH started AS (
			SELECT store_code, ` + startExpr + ` AS start_date_of_use
			FROM store_summary
			WHERE company_code = ? AND total_labels > 0
			GROUP BY store_code
		), month_usage AS (
			SELECT store_code,
			       MAX(store_name) AS store_name,
			       COUNT(*) AS usage_days,
			       ROUND(AVG(total_labels), 3) AS avg_label_count,
			       ROUND(AVG(product_updated), 3) AS avg_product_update_count
			FROM store_summary
			WHERE company_code = ?
			  AND date >= ? AND date < ?
			  AND total_labels > 0
			GROUP BY store_code
		)
		SELECT s.store_code,
		       m.store_name,
		       s.start_date_of_use,
		       COALESCE(m.usage_days, 0) AS usage_days,
		       m.avg_label_count,
		       m.avg_product_update_count
		FROM started s
		LEFT JOIN month_usage m ON m.store_code = s.store_code
		ORDER BY s.start_date_of_use ASC, s.store_code ASC`

	var rows []usageReportRow
	if err := r.db.WithContext(ctx).
		Raw(query, companyCode, companyCode, start, end).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	reports := make([]billing.StoreUsageReport, len(rows))
	for i, row := range rows {
		startDate, err := time.ParseInLocation("2006-01-02", row.StartDateOfUse, time.UTC)
		if err != nil {
			return nil, err
		}
		reports[i] = billing.StoreUsageReport{
			StoreCode:             row.StoreCode,
			StoreName:             row.StoreName,
			StartDateOfUse:        startDate,
			UsageDays:             row.UsageDays,
			AvgLabelCount:         row.AvgLabelCount,
			AvgProductUpdateCount: row.AvgProductUpdateCount,
		}
	}
	return reports, nil
}
