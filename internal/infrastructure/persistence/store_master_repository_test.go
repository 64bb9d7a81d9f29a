package persistence

import (
	"context"
	"testing"

	"github.com/labelworks/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStoreMaster(t *testing.T, db *gorm.DB, company, store, name string) {
	t.Helper()
	require.NoError(t, db.Create(&models.StoreMasterModel{
		CompanyCode: company,
		StoreCode:   store,
		StoreName:   name,
	}).Error)
}

func TestGormStoreMasterRepository_FindNames(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewGormStoreMasterRepository(db)
	ctx := context.Background()

	seedStoreMaster(t, db, "ACME", "S1", "Main Street")
	seedStoreMaster(t, db, "ACME", "007", "Harbor Side")
	seedStoreMaster(t, db, "OTHER", "S1", "Wrong Company")

	t.Run("returns names for known codes only", func(t *testing.T) {
		names, err := repo.FindNames(ctx, "ACME", []string{"S1", "007", "UNKNOWN"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"S1":  "Main Street",
			"007": "Harbor Side",
		}, names)
	})

	t.Run("scopes lookups to the company", func(t *testing.T) {
		names, err := repo.FindNames(ctx, "NOBODY", []string{"S1"})
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("empty code list short-circuits", func(t *testing.T) {
		names, err := repo.FindNames(ctx, "ACME", nil)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
