package billing

import (
	"strings"

	"github.com/labelworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice is one issued monthly invoice for a customer. InvoiceCode is a
// monotonic sequence shared by all customers within the same issued month.
type Invoice struct {
	shared.BaseEntity
	CompanyCode string
	CompanyName string
	IssuedDate  string // YYYY-MM
	InvoiceCode int
	Currency    string
	TTM         decimal.NullDecimal
}

// NewInvoice creates an invoice for its first issuance.
func NewInvoice(companyCode, companyName, issuedDate string, invoiceCode int, currency string, ttm decimal.NullDecimal) (*Invoice, error) {
	if strings.TrimSpace(companyCode) == "" || strings.TrimSpace(companyName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company code and name are required")
	}
	if _, err := ParseMonth(issuedDate); err != nil {
		return nil, err
	}
	if invoiceCode < 1 {
		return nil, shared.NewDomainError("INVALID_INVOICE_CODE", "Invoice code must be positive")
	}
	return &Invoice{
		CompanyCode: companyCode,
		CompanyName: companyName,
		IssuedDate:  issuedDate,
		InvoiceCode: invoiceCode,
		Currency:    currency,
		TTM:         ttm,
	}, nil
}

// Reissue updates the mutable fields on a re-upload for the same month.
// The invoice code never changes once allocated.
func (i *Invoice) Reissue(companyName, currency string, ttm decimal.NullDecimal) {
	i.CompanyName = companyName
	i.Currency = currency
	i.TTM = ttm
}
