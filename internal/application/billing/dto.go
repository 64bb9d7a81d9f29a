package billing

import (
	"time"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// UploadInvoiceRequest is the payload for a monthly usage upload. The usage
// rows stay loosely typed here; the domain validator owns their shape, so
// no binding tags beyond basic presence.
type UploadInvoiceRequest struct {
	CompanyID   int64                 `json:"companyId"`
	CompanyCode string                `json:"companyCode"`
	CompanyName string                `json:"companyName"`
	IssuedDate  string                `json:"issuedDate"`
	Currency    string                `json:"currency"`
	TTM         *decimal.Decimal      `json:"ttm"`
	Summaries   []billing.RawUsageRow `json:"summaries"`
}

// UploadInvoiceResponse confirms the issued (or re-issued) invoice.
type UploadInvoiceResponse struct {
	Invoice IssuedInvoiceRef `json:"invoice"`
}

// IssuedInvoiceRef is the minimal reference to an issued invoice.
type IssuedInvoiceRef struct {
	ID          int64  `json:"id"`
	InvoiceCode int    `json:"invoice_code"`
	IssuedDate  string `json:"issued_date"`
}

// InvoiceResponse represents one issued invoice in API responses.
// TTM stays nil when the invoice was issued without a conversion rate.
type InvoiceResponse struct {
	ID          int64            `json:"id"`
	CompanyCode string           `json:"company_code"`
	CompanyName string           `json:"company_name"`
	IssuedDate  string           `json:"issued_date"`
	InvoiceCode int              `json:"invoice_code"`
	Currency    string           `json:"currency"`
	TTM         *decimal.Decimal `json:"ttm"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// StoreUsageResponse is one store's aggregate for the requested month.
// Averages are nil for a store with no usage days inside the month.
type StoreUsageResponse struct {
	StoreCode             string           `json:"store_code"`
	StoreName             *string          `json:"store_name"`
	StartDateOfUse        string           `json:"start_date_of_use"`
	UsageDays             int              `json:"usage_days"`
	AvgLabelCount         *decimal.Decimal `json:"avg_label_count"`
	AvgProductUpdateCount *decimal.Decimal `json:"avg_product_update_count"`
}

func toInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		CompanyCode: inv.CompanyCode,
		CompanyName: inv.CompanyName,
		IssuedDate:  inv.IssuedDate,
		InvoiceCode: inv.InvoiceCode,
		Currency:    inv.Currency,
		TTM:         fromNullDecimal(inv.TTM),
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func toStoreUsageResponse(r billing.StoreUsageReport) StoreUsageResponse {
	return StoreUsageResponse{
		StoreCode:             r.StoreCode,
		StoreName:             r.StoreName,
		StartDateOfUse:        r.StartDateOfUse.Format("2006-01-02"),
		UsageDays:             r.UsageDays,
		AvgLabelCount:         fromNullDecimal(r.AvgLabelCount),
		AvgProductUpdateCount: fromNullDecimal(r.AvgProductUpdateCount),
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
