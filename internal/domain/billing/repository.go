package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRepository provides access to the customer master data.
type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindByIDAndCode(ctx context.Context, id int64, companyCode string) (*Customer, error)
	FindByCode(ctx context.Context, companyCode string) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	ExistsByCode(ctx context.Context, companyCode string) (bool, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id int64) error
}

// StoreSummaryRepository stores per-(company, store, date) daily usage rows.
type StoreSummaryRepository interface {
	// ReplaceMonth deletes every summary for the company inside the month's
	// half-open date range and inserts the given records. Callers must run
	// it on a transaction handle so readers never observe the intermediate
	// state.
	ReplaceMonth(ctx context.Context, companyCode string, month Month, records []*StoreSummary) error
	FindByCompanyAndRange(ctx context.Context, companyCode string, start, end time.Time) ([]StoreSummary, error)
	// Summarize computes the per-store usage window for the target month,
	// anchoring the first day of use on the full history, not just the month.
	Summarize(ctx context.Context, companyCode string, month Month) ([]StoreUsageReport, error)
}

// InvoiceRepository stores issued monthly invoices.
type InvoiceRepository interface {
	FindByCompanyAndMonth(ctx context.Context, companyCode string, month Month) (*Invoice, error)
	// NextInvoiceCode returns 1 + the highest code already issued for the
	// month across all customers. Implementations must serialize allocation
	// per month so concurrent first issuances never share a code.
	NextInvoiceCode(ctx context.Context, month Month) (int, error)
	Save(ctx context.Context, invoice *Invoice) error
	ListByCompany(ctx context.Context, companyCode string) ([]Invoice, error)
}

// StoreMasterRepository reads the store directory.
type StoreMasterRepository interface {
	// FindNames returns the directory names for the given store codes,
	// keyed by store code, scoped to the company. Codes with no directory
	// entry are simply absent from the result.
	FindNames(ctx context.Context, companyCode string, storeCodes []string) (map[string]string, error)
}

// StoreUsageReport is one store's aggregate for a target month.
// UsageDays counts distinct days in the month with a positive label count;
// the averages run over those same days and are nil when there are none.
// StartDateOfUse is the earliest day in all history with a positive label
// count.
type StoreUsageReport struct {
	StoreCode             string
	StoreName             *string
	StartDateOfUse        time.Time
	UsageDays             int
	AvgLabelCount         decimal.NullDecimal
	AvgProductUpdateCount decimal.NullDecimal
}

// ResolveStoreNames backfills nil store names from the directory lookup.
// Records whose code has no directory entry keep a nil name.
func ResolveStoreNames(records []*StoreSummary, names map[string]string) {
	for _, r := range records {
		if r.StoreName != nil {
			continue
		}
		if name, ok := names[r.StoreCode]; ok && name != "" {
			n := name
			r.StoreName = &n
		}
	}
}

// UnnamedStoreCodes returns the distinct store codes of records that still
// need a directory name, in first-seen order.
func UnnamedStoreCodes(records []*StoreSummary) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, r := range records {
		if r.StoreName != nil || seen[r.StoreCode] {
			continue
		}
		seen[r.StoreCode] = true
		codes = append(codes, r.StoreCode)
	}
	return codes
}
