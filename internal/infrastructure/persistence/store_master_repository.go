package persistence

import (
	"context"

	"github.com/labelworks/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStoreMasterRepository implements billing.StoreMasterRepository using GORM
type GormStoreMasterRepository struct {
	db *gorm.DB
}

// NewGormStoreMasterRepository creates a new GormStoreMasterRepository
func NewGormStoreMasterRepository(db *gorm.DB) *GormStoreMasterRepository {
	return &GormStoreMasterRepository{db: db}
}

// FindNames returns directory names keyed by store code for the company.
// Codes with no directory entry are absent from the result.
func (r *GormStoreMasterRepository) FindNames(ctx context.Context, companyCode string, storeCodes []string) (map[string]string, error) {
	names := make(map[string]string)
	if len(storeCodes) == 0 {
		return names, nil
	}

	var masters []models.StoreMasterModel
	if err := r.db.WithContext(ctx).
		Where("company_code = ? AND store_code IN ?", companyCode, storeCodes).
		Find(&masters).Error; err != nil {
		return nil, err
	}

	for _, m := range masters {
		names[m.StoreCode] = m.StoreName
	}
	return names, nil
}
