package partner

import (
	"context"
	"errors"

	"github.com/labelworks/backend/internal/domain/billing"
	"github.com/labelworks/backend/internal/domain/shared"
)

// CustomerService handles customer master data operations
type CustomerService struct {
	customerRepo billing.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo billing.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByCode(ctx, req.CompanyCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this company code already exists")
	}

	customer, err := billing.NewCustomer(req.CompanyCode, req.CompanyName, *req.UnitPrice, req.Currency)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *toCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Update updates a customer's mutable fields
func (s *CustomerService) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyCode != nil && *req.CompanyCode != customer.CompanyCode {
		existing, err := s.customerRepo.FindByCode(ctx, *req.CompanyCode)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this company code already exists")
		}
		if err := customer.ChangeCode(*req.CompanyCode); err != nil {
			return nil, err
		}
	}
	if req.CompanyName != nil {
		if err := customer.Rename(*req.CompanyName); err != nil {
			return nil, err
		}
	}
	if req.UnitPrice != nil {
		if err := customer.SetUnitPrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.Currency != nil {
		if err := customer.SetCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}
