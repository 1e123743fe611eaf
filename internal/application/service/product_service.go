package service

import (
	"context"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/pkg/apperror"
	"github.com/dvillalba/fogonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductService handles catalog management
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name       string
	Code       string
	Category   string
	Price      int64
	Stock      int
	StockAlert int
	TrackStock bool
	Active     bool
	Notes      *string
}

// CreateProduct creates a new menu item
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	existing, err := s.productRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this code already exists")
	}

	product := &entity.Product{
		Name:       input.Name,
		Code:       input.Code,
		Category:   input.Category,
		Price:      input.Price,
		Stock:      input.Stock,
		StockAlert: input.StockAlert,
		TrackStock: input.TrackStock,
		Active:     input.Active,
		Notes:      input.Notes,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts retrieves products matching the filter
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, p), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name       string
	Category   string
	Price      int64
	Stock      int
	StockAlert int
	TrackStock bool
	Active     bool
	Notes      *string
}

// UpdateProduct updates an existing menu item
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Price = input.Price
	product.Stock = input.Stock
	product.StockAlert = input.StockAlert
	product.TrackStock = input.TrackStock
	product.Active = input.Active
	product.Notes = input.Notes

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a menu item
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
