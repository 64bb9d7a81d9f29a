package persistence

import (
	"context"
	"errors"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/labelworks/backend/internal/domain/shared"
	"github.com/labelworks/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements billing.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*billing.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDAndCode finds a customer whose ID and company code both match.
// Uploads carry both identifiers and must agree on the same customer.
func (r *GormCustomerRepository) FindByIDAndCode(ctx context.Context, id int64, companyCode string) (*billing.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_code = ?", id, companyCode).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a customer by its company code
func (r *GormCustomerRepository) FindByCode(ctx context.Context, companyCode string) (*billing.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("company_code = ?", companyCode).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all customers ordered by company name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]billing.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Order("company_name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]billing.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// ExistsByCode checks whether a customer with the given company code exists
func (r *GormCustomerRepository) ExistsByCode(ctx context.Context, companyCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("company_code = ?", companyCode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *billing.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	customer.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete removes a customer by ID
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
