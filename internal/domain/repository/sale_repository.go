package repository

import (
	"context"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/dvillalba/fogonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleFilterParams holds filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	From       *time.Time
	To         *time.Time
	Status     enum.SaleStatus
	OrderType  enum.OrderType
}

// MethodTotal is the revenue collected through one payment method
type MethodTotal struct {
	Method enum.PaymentMethod `json:"method"`
	Amount int64              `json:"amount"`
}

// ProductTally is the quantity sold of one product. Synthetic delivery
// lines are not sale items and never appear here.
type ProductTally struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
}

// DailyReport aggregates one day of sales
type DailyReport struct {
	Date      string         `json:"date"`
	SaleCount int64          `json:"sale_count"`
	Revenue   int64          `json:"revenue"`
	ByMethod  []MethodTotal  `json:"by_method"`
	Products  []ProductTally `json:"products"`
}

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// NextNumber returns the next sequential display number for the day
	NextNumber(ctx context.Context, day time.Time) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error
	DailyReport(ctx context.Context, day time.Time) (*DailyReport, error)
}
