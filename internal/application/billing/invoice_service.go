package billing

import (
	"context"
	"errors"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/labelworks/backend/internal/domain/shared"
	"github.com/labelworks/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvoiceService runs the monthly usage upload pipeline and serves invoice
// queries. It owns the transaction boundary: everything between the customer
// lookup and the invoice upsert commits or rolls back as one unit.
type InvoiceService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(db *gorm.DB, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		db:     db,
		logger: logger,
	}
}

// Upload validates one customer's usage for one month and, in a single
// transaction, replaces the month's stored rows and issues or re-issues the
// invoice. Re-uploads for the same (company, month) keep the invoice code
// allocated on first issuance.
func (s *InvoiceService) Upload(ctx context.Context, req UploadInvoiceRequest) (*UploadInvoiceResponse, error) {
	records, err := billing.ValidateUpload(billing.UploadRequest{
		CompanyID:   req.CompanyID,
		CompanyCode: req.CompanyCode,
		CompanyName: req.CompanyName,
		IssuedDate:  req.IssuedDate,
		Currency:    req.Currency,
		TTM:         toNullDecimal(req.TTM),
		Summaries:   req.Summaries,
	})
	if err != nil {
		s.logger.Warn("usage upload rejected",
			zap.String("company_code", req.CompanyCode),
			zap.String("issued_date", req.IssuedDate),
			zap.Error(err),
		)
		return nil, err
	}

	// Safe after validation.
	month, err := billing.ParseMonth(req.IssuedDate)
	if err != nil {
		return nil, err
	}

	var invoice *billing.Invoice
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers := persistence.NewGormCustomerRepository(tx)
		summaries := persistence.NewGormStoreSummaryRepository(tx)
		invoices := persistence.NewGormInvoiceRepository(tx)
		stores := persistence.NewGormStoreMasterRepository(tx)

		if _, err := customers.FindByIDAndCode(ctx, req.CompanyID, req.CompanyCode); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer master data not found.")
			}
			return err
		}

		names, err := stores.FindNames(ctx, req.CompanyCode, billing.UnnamedStoreCodes(records))
		if err != nil {
			return err
		}
		billing.ResolveStoreNames(records, names)

		if err := summaries.ReplaceMonth(ctx, req.CompanyCode, month, records); err != nil {
			return err
		}

		existing, err := invoices.FindByCompanyAndMonth(ctx, req.CompanyCode, month)
		switch {
		case err == nil:
			existing.Reissue(req.CompanyName, req.Currency, toNullDecimal(req.TTM))
			invoice = existing
		case errors.Is(err, shared.ErrNotFound):
			code, err := invoices.NextInvoiceCode(ctx, month)
			if err != nil {
				return err
			}
			invoice, err = billing.NewInvoice(req.CompanyCode, req.CompanyName, month.String(), code, req.Currency, toNullDecimal(req.TTM))
			if err != nil {
				return err
			}
		default:
			return err
		}

		return invoices.Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("usage upload accepted",
		zap.String("company_code", req.CompanyCode),
		zap.String("issued_date", invoice.IssuedDate),
		zap.Int("invoice_code", invoice.InvoiceCode),
		zap.Int("records", len(records)),
	)

	return &UploadInvoiceResponse{
		Invoice: IssuedInvoiceRef{
			ID:          invoice.ID,
			InvoiceCode: invoice.InvoiceCode,
			IssuedDate:  invoice.IssuedDate,
		},
	}, nil
}

// ListIssued returns a company's invoices, most recent month first.
func (s *InvoiceService) ListIssued(ctx context.Context, companyCode string) ([]InvoiceResponse, error) {
	if companyCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "companyCode is required")
	}

	invoices := persistence.NewGormInvoiceRepository(s.db)
	found, err := invoices.ListByCompany(ctx, companyCode)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(found))
	for i := range found {
		responses[i] = toInvoiceResponse(&found[i])
	}
	return responses, nil
}

// Summaries returns the per-store usage aggregates for a company and month.
func (s *InvoiceService) Summaries(ctx context.Context, companyCode, issuedDate string) ([]StoreUsageResponse, error) {
	if companyCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "companyCode is required")
	}
	month, err := billing.ParseMonth(issuedDate)
	if err != nil {
		return nil, err
	}

	summaries := persistence.NewGormStoreSummaryRepository(s.db)
	reports, err := summaries.Summarize(ctx, companyCode, month)
	if err != nil {
		return nil, err
	}

	responses := make([]StoreUsageResponse, len(reports))
	for i, r := range reports {
		responses[i] = toStoreUsageResponse(r)
	}
	return responses, nil
}
