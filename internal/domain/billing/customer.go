package billing

import (
	"strings"

	"github.com/labelworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultPartnerName is the billing partner printed on invoices when a
// customer does not carry an explicit one.
const DefaultPartnerName = "BIPROGY Inc."

// Customer represents a billed customer from the master data.
// CompanyCode is the externally stable business identifier; the numeric ID
// is internal and assigned by storage.
type Customer struct {
	shared.BaseEntity
	CompanyCode   string
	CompanyName   string
	SIPartnerName string
	UnitPrice     decimal.Decimal
	Currency      string
}

// NewCustomer creates a customer with validation.
func NewCustomer(companyCode, companyName string, unitPrice decimal.Decimal, currency string) (*Customer, error) {
	companyCode = strings.TrimSpace(companyCode)
	companyName = strings.TrimSpace(companyName)
	currency = strings.TrimSpace(currency)

	if companyCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company code cannot be empty")
	}
	if companyName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Currency cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	return &Customer{
		CompanyCode:   companyCode,
		CompanyName:   companyName,
		SIPartnerName: DefaultPartnerName,
		UnitPrice:     unitPrice,
		Currency:      currency,
	}, nil
}

// Rename updates the display name.
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company name cannot be empty")
	}
	c.CompanyName = name
	return nil
}

// ChangeCode updates the business code. Uniqueness is re-checked by the
// application layer before this is persisted.
func (c *Customer) ChangeCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company code cannot be empty")
	}
	c.CompanyCode = code
	return nil
}

// SetUnitPrice updates the per-unit price.
func (c *Customer) SetUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}
	c.UnitPrice = price
	return nil
}

// SetCurrency updates the billing currency.
func (c *Customer) SetCurrency(currency string) error {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return shared.NewDomainError("INVALID_INPUT", "Currency cannot be empty")
	}
	c.Currency = currency
	return nil
}
