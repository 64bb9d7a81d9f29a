package persistence

import (
	"context"
	"errors"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/labelworks/backend/internal/domain/shared"
	"github.com/labelworks/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByCompanyAndMonth finds the invoice issued to a company for a month
func (r *GormInvoiceRepository) FindByCompanyAndMonth(ctx context.Context, companyCode string, month billing.Month) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("company_code = ? AND issued_date = ?", companyCode, month.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// NextInvoiceCode returns 1 + the highest code already issued for the month
// across all companies. On Postgres it takes a transaction-scoped advisory
// lock keyed on the month so concurrent first issuances cannot read the same
// maximum; call it on a transaction handle for the lock to be meaningful.
func (r *GormInvoiceRepository) NextInvoiceCode(ctx context.Context, month billing.Month) (int, error) {
	db := r.db.WithContext(ctx)

	if r.db.Dialector.Name() == "postgres" {
		if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", month.String()).Error; err != nil {
			return 0, err
		}
	}

	var maxCode int
	if err := db.Model(&models.InvoiceModel{}).
		Where("issued_date = ?", month.String()).
		Select("COALESCE(MAX(invoice_code), 0)").
		Scan(&maxCode).Error; err != nil {
		return 0, err
	}
	return maxCode + 1, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	invoice.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// ListByCompany returns a company's invoices, most recent month first,
// breaking ties on the invoice code.
func (r *GormInvoiceRepository) ListByCompany(ctx context.Context, companyCode string) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("company_code = ?", companyCode).
		Order("issued_date DESC, invoice_code DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}
