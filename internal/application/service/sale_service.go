package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/pkg/apperror"
	"github.com/dvillalba/fogonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleService handles sale recording and reporting
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// SaleItemInput is one cart line in a sale request
type SaleItemInput struct {
	ProductID   *uuid.UUID
	ProductName string
	UnitPrice   int64
	Quantity    int
}

// SalePaymentInput is one tendered payment in a sale request
type SalePaymentInput struct {
	Method    enum.PaymentMethod
	Amount    int64
	Reference string
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	OrderType       enum.OrderType
	Items           []SaleItemInput
	Discount        int64
	DeliveryFee     int64
	Note            string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerTaxID   string
	TaxExempt       bool
	DriverName      string
	Payments        []SalePaymentInput
	// AllowPartial confirms the sale even when payments do not cover
	// the total; the sale is recorded as pending or partial.
	AllowPartial bool
}

// CreateSale validates the cart, reconciles payments through a ledger
// and persists the resulting sale.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if !input.OrderType.Valid() {
		return nil, apperror.NewBadRequestError("Unknown order type")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one item")
	}
	if input.Discount < 0 || input.DeliveryFee < 0 {
		return nil, apperror.NewBadRequestError("Discount and delivery fee cannot be negative")
	}
	if input.OrderType == enum.OrderTypeDelivery && input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required for delivery orders")
	}

	items := make([]entity.SaleItem, 0, len(input.Items))
	var subTotal int64
	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		if in.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item price cannot be negative")
		}
		if in.ProductName == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}
		subTotal += in.UnitPrice * int64(in.Quantity)
		items = append(items, entity.SaleItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			UnitPrice:   in.UnitPrice,
			Quantity:    in.Quantity,
		})
	}

	total := subTotal - input.Discount
	if total < 0 {
		total = 0
	}
	total += input.DeliveryFee

	ledger := entity.NewPaymentLedger(total)
	for _, p := range input.Payments {
		if !p.Method.Valid() {
			return nil, apperror.NewBadRequestError("Unknown payment method")
		}
		if _, err := ledger.AddPayment(p.Method, p.Amount, p.Reference); err != nil {
			if errors.Is(err, entity.ErrInvalidPaymentAmount) {
				return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
			}
			return nil, err
		}
	}

	if !ledger.IsSettleable() && !input.AllowPartial {
		return nil, apperror.NewBadRequestError("Payments do not cover the total; confirm the partial sale explicitly")
	}

	payments, status, err := ledger.Finalize()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	number, err := s.saleRepo.NextNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		Number:          number,
		SaleDate:        now,
		OrderType:       input.OrderType,
		SubTotal:        subTotal,
		Discount:        input.Discount,
		DeliveryFee:     input.DeliveryFee,
		Total:           total,
		Note:            input.Note,
		Status:          status,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		CustomerTaxID:   input.CustomerTaxID,
		TaxExempt:       input.TaxExempt,
		DriverName:      input.DriverName,
		Items:           items,
		Payments:        payments,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.decrementStock(ctx, input.Items)

	return sale, nil
}

// decrementStock reduces stock for catalog items that track it. Stock
// bookkeeping must never fail a recorded sale, so errors are logged
// and swallowed.
func (s *SaleService) decrementStock(ctx context.Context, items []SaleItemInput) {
	for _, in := range items {
		if in.ProductID == nil {
			continue
		}
		if err := s.productRepo.DecrementStock(ctx, *in.ProductID, in.Quantity); err != nil {
			log.Printf("Stock decrement failed for product %s: %v", in.ProductID, err)
		}
	}
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales retrieves sales matching the filter
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, p), nil
}

// CancelSale voids a recorded sale
func (s *SaleService) CancelSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status == enum.SaleStatusCancelled {
		return nil, apperror.NewConflictError("Sale is already cancelled")
	}
	if err := s.saleRepo.UpdateStatus(ctx, id, enum.SaleStatusCancelled); err != nil {
		return nil, err
	}
	sale.Status = enum.SaleStatusCancelled
	return sale, nil
}

// DailyReport aggregates sales for one day
func (s *SaleService) DailyReport(ctx context.Context, day time.Time) (*repository.DailyReport, error) {
	return s.saleRepo.DailyReport(ctx, day)
}
