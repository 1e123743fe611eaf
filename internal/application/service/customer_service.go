package service

import (
	"context"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/pkg/apperror"
	"github.com/dvillalba/fogonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles the customer directory
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	Name      string
	Phone     *string
	Address   *string
	TaxID     *string
	TaxExempt bool
}

// CreateCustomer creates a new directory entry
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		TaxID:     input.TaxID,
		TaxExempt: input.TaxExempt,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// FindByPhone looks up a customer by phone number; nil when unknown
func (s *CustomerService) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return s.customerRepo.GetByPhone(ctx, phone)
}

// ListCustomers retrieves customers matching the filter
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, p), nil
}

// UpdateCustomer updates a directory entry
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.TaxID = input.TaxID
	customer.TaxExempt = input.TaxExempt

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a directory entry
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
