package models

import (
	"time"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	CompanyCode   string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_info_company_code"`
	CompanyName   string          `gorm:"type:varchar(200);not null"`
	SIPartnerName string          `gorm:"column:si_partner_name;type:varchar(200);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Currency      string          `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customer_info"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *billing.Customer {
	return &billing.Customer{
		BaseEntity:    m.BaseModel.ToDomain(),
		CompanyCode:   m.CompanyCode,
		CompanyName:   m.CompanyName,
		SIPartnerName: m.SIPartnerName,
		UnitPrice:     m.UnitPrice,
		Currency:      m.Currency,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *billing.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.CompanyCode = c.CompanyCode
	m.CompanyName = c.CompanyName
	m.SIPartnerName = c.SIPartnerName
	m.UnitPrice = c.UnitPrice
	m.Currency = c.Currency
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *billing.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// StoreSummaryModel is the persistence model for daily store usage rows.
// The (company_code, store_code, date) triple is the business identity of
// a row; re-uploads for the same month replace it wholesale.
type StoreSummaryModel struct {
	BaseModel
	CompanyCode    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_store_summary_identity,priority:1"`
	StoreCode      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_store_summary_identity,priority:2"`
	StoreName      *string   `gorm:"type:varchar(200)"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_store_summary_identity,priority:3"`
	TotalLabels    int64     `gorm:"not null;default:0"`
	ProductUpdated int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StoreSummaryModel) TableName() string {
	return "store_summary"
}

// ToDomain converts the persistence model to a domain StoreSummary entity.
func (m *StoreSummaryModel) ToDomain() *billing.StoreSummary {
	return &billing.StoreSummary{
		BaseEntity:     m.BaseModel.ToDomain(),
		CompanyCode:    m.CompanyCode,
		StoreCode:      m.StoreCode,
		StoreName:      m.StoreName,
		Date:           m.Date,
		TotalLabels:    m.TotalLabels,
		ProductUpdated: m.ProductUpdated,
	}
}

// FromDomain populates the persistence model from a domain StoreSummary entity.
func (m *StoreSummaryModel) FromDomain(s *billing.StoreSummary) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.CompanyCode = s.CompanyCode
	m.StoreCode = s.StoreCode
	m.StoreName = s.StoreName
	m.Date = s.Date
	m.TotalLabels = s.TotalLabels
	m.ProductUpdated = s.ProductUpdated
}

// StoreSummaryModelFromDomain creates a new persistence model from a domain StoreSummary entity.
func StoreSummaryModelFromDomain(s *billing.StoreSummary) *StoreSummaryModel {
	m := &StoreSummaryModel{}
	m.FromDomain(s)
	return m
}

// InvoiceModel is the persistence model for issued invoices.
type InvoiceModel struct {
	BaseModel
	CompanyCode string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_issued_invoice_company_month,priority:1"`
	CompanyName string              `gorm:"type:varchar(200);not null"`
	IssuedDate  string              `gorm:"type:varchar(7);not null;uniqueIndex:idx_issued_invoice_company_month,priority:2;index:idx_issued_invoice_month"`
	InvoiceCode int                 `gorm:"not null"`
	Currency    string              `gorm:"type:varchar(10);not null"`
	TTM         decimal.NullDecimal `gorm:"column:ttm;type:decimal(18,6)"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "issued_invoice"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyCode: m.CompanyCode,
		CompanyName: m.CompanyName,
		IssuedDate:  m.IssuedDate,
		InvoiceCode: m.InvoiceCode,
		Currency:    m.Currency,
		TTM:         m.TTM,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.CompanyCode = i.CompanyCode
	m.CompanyName = i.CompanyName
	m.IssuedDate = i.IssuedDate
	m.InvoiceCode = i.InvoiceCode
	m.Currency = i.Currency
	m.TTM = i.TTM
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}

// StoreMasterModel is the persistence model for the store master data.
type StoreMasterModel struct {
	BaseModel
	CompanyCode string `gorm:"type:varchar(50);not null;uniqueIndex:idx_store_master_identity,priority:1"`
	StoreCode   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_store_master_identity,priority:2"`
	StoreName   string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (StoreMasterModel) TableName() string {
	return "store_master"
}

// ToDomain converts the persistence model to a domain StoreMaster entity.
func (m *StoreMasterModel) ToDomain() *billing.StoreMaster {
	return &billing.StoreMaster{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyCode: m.CompanyCode,
		StoreCode:   m.StoreCode,
		StoreName:   m.StoreName,
	}
}

// FromDomain populates the persistence model from a domain StoreMaster entity.
func (m *StoreMasterModel) FromDomain(s *billing.StoreMaster) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.CompanyCode = s.CompanyCode
	m.StoreCode = s.StoreCode
	m.StoreName = s.StoreName
}
