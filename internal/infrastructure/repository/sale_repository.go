package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	domainRepo "github.com/dvillalba/fogonpos-api/internal/domain/repository"
	"github.com/dvillalba/fogonpos-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists a sale together with its items and payments
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// GetByID retrieves a sale with its items and payments
func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// List retrieves sales matching the filter with pagination
func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	if params.From != nil {
		query = query.Where("sale_date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("sale_date < ?", *params.To)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.OrderType != "" {
		query = query.Where("order_type = ?", params.OrderType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []entity.Sale
	err := query.
		Preload("Items").
		Preload("Payments").
		Order("sale_date DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// NextNumber returns max(number)+1 among the day's sales
func (r *saleRepository) NextNumber(ctx context.Context, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var highest *int
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Select("MAX(number)").
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}
	if highest == nil {
		return 1, nil
	}
	return *highest + 1, nil
}

// UpdateStatus changes only the status column
func (r *saleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DailyReport aggregates one day of non-cancelled sales
func (r *saleRepository) DailyReport(ctx context.Context, day time.Time) (*domainRepo.DailyReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	report := &domainRepo.DailyReport{Date: start.Format("2006-01-02")}

	saleScope := func(db *gorm.DB) *gorm.DB {
		return db.Where("sales.sale_date >= ? AND sales.sale_date < ? AND sales.status <> ?",
			start, end, enum.SaleStatusCancelled)
	}

	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Scopes(saleScope).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Row().Scan(&report.SaleCount, &report.Revenue)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Joins("JOIN sales ON sales.id = payments.sale_id").
		Scopes(saleScope).
		Select("payments.method AS method, COALESCE(SUM(payments.amount), 0) AS amount").
		Group("payments.method").
		Order("amount DESC").
		Scan(&report.ByMethod).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&entity.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Scopes(saleScope).
		Select("sale_items.product_name AS product_name, SUM(sale_items.quantity) AS quantity, SUM(sale_items.unit_price * sale_items.quantity) AS amount").
		Group("sale_items.product_name").
		Order("quantity DESC").
		Scan(&report.Products).Error
	if err != nil {
		return nil, err
	}

	return report, nil
}
