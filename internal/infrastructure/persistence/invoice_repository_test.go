package persistence

import (
	"context"
	"testing"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/labelworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewInvoice(t *testing.T, company, name, month string, code int) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(company, name, month, code, "USD", decimal.NullDecimal{})
	require.NoError(t, err)
	return inv
}

func TestGormInvoiceRepository_NextInvoiceCode(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	april := mustParseMonth(t, "2025-04")
	may := mustParseMonth(t, "2025-05")

	t.Run("starts at one for an empty month", func(t *testing.T) {
		code, err := repo.NextInvoiceCode(ctx, april)
		require.NoError(t, err)
		assert.Equal(t, 1, code)
	})

	t.Run("continues from the month's maximum", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, mustNewInvoice(t, "ACME", "Acme Retail", "2025-04", 1)))
		require.NoError(t, repo.Save(ctx, mustNewInvoice(t, "ZETA", "Zeta Stores", "2025-04", 2)))

		code, err := repo.NextInvoiceCode(ctx, april)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("months count independently", func(t *testing.T) {
		code, err := repo.NextInvoiceCode(ctx, may)
		require.NoError(t, err)
		assert.Equal(t, 1, code)
	})
}

func TestGormInvoiceRepository_SaveAndFind(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	april := mustParseMonth(t, "2025-04")

	invoice := mustNewInvoice(t, "ACME", "Acme Retail", "2025-04", 1)
	require.NoError(t, repo.Save(ctx, invoice))
	require.NotZero(t, invoice.ID)

	t.Run("finds by company and month", func(t *testing.T) {
		found, err := repo.FindByCompanyAndMonth(ctx, "ACME", april)
		require.NoError(t, err)
		assert.Equal(t, invoice.ID, found.ID)
		assert.Equal(t, 1, found.InvoiceCode)
		assert.False(t, found.TTM.Valid)
	})

	t.Run("not found for unknown company", func(t *testing.T) {
		_, err := repo.FindByCompanyAndMonth(ctx, "NOPE", april)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("reissue keeps the allocated code", func(t *testing.T) {
		ttm := decimal.NullDecimal{Decimal: decimal.RequireFromString("151.25"), Valid: true}
		invoice.Reissue("Acme Retail Group", "JPY", ttm)
		require.NoError(t, repo.Save(ctx, invoice))

		found, err := repo.FindByCompanyAndMonth(ctx, "ACME", april)
		require.NoError(t, err)
		assert.Equal(t, 1, found.InvoiceCode)
		assert.Equal(t, "Acme Retail Group", found.CompanyName)
		assert.Equal(t, "JPY", found.Currency)
		require.True(t, found.TTM.Valid)
		assert.True(t, found.TTM.Decimal.Equal(decimal.RequireFromString("151.25")))
	})
}

func TestGormInvoiceRepository_ListByCompany(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustNewInvoice(t, "ACME", "Acme Retail", "2025-03", 4)))
	require.NoError(t, repo.Save(ctx, mustNewInvoice(t, "ACME", "Acme Retail", "2025-05", 2)))
	require.NoError(t, repo.Save(ctx, mustNewInvoice(t, "ACME", "Acme Retail", "2025-04", 1)))
	require.NoError(t, repo.Save(ctx, mustNewInvoice(t, "ZETA", "Zeta Stores", "2025-04", 2)))

	invoices, err := repo.ListByCompany(ctx, "ACME")
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "2025-05", invoices[0].IssuedDate)
	assert.Equal(t, "2025-04", invoices[1].IssuedDate)
	assert.Equal(t, "2025-03", invoices[2].IssuedDate)
}
