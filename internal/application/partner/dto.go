package partner

import (
	"time"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	CompanyCode string           `json:"company_code" binding:"required,min=1,max=50"`
	CompanyName string           `json:"company_name" binding:"required,min=1,max=200"`
	UnitPrice   *decimal.Decimal `json:"unit_price" binding:"required"`
	Currency    string           `json:"currency" binding:"required,min=1,max=10"`
}

// UpdateCustomerRequest represents a request to update a customer.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	CompanyCode *string          `json:"company_code" binding:"omitempty,min=1,max=50"`
	CompanyName *string          `json:"company_name" binding:"omitempty,min=1,max=200"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Currency    *string          `json:"currency" binding:"omitempty,min=1,max=10"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID            int64           `json:"id"`
	CompanyCode   string          `json:"company_code"`
	CompanyName   string          `json:"company_name"`
	SIPartnerName string          `json:"si_partner_name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func toCustomerResponse(c *billing.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:            c.ID,
		CompanyCode:   c.CompanyCode,
		CompanyName:   c.CompanyName,
		SIPartnerName: c.SIPartnerName,
		UnitPrice:     c.UnitPrice,
		Currency:      c.Currency,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
