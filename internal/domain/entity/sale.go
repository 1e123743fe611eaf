package entity

import (
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a recorded point-of-sale order. Monetary amounts are
// integer guaranies; the currency has no subunit.
type Sale struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Number      int            `gorm:"not null;index" json:"number"`
	SaleDate    time.Time      `gorm:"not null;index" json:"sale_date"`
	OrderType   enum.OrderType `gorm:"size:20;not null" json:"order_type"`
	SubTotal    int64          `gorm:"default:0" json:"subtotal"`
	Discount    int64          `gorm:"default:0" json:"discount"`
	DeliveryFee int64          `gorm:"default:0" json:"delivery_fee"`
	Total       int64          `gorm:"default:0" json:"total"`
	Note        string         `gorm:"type:text" json:"note,omitempty"`
	Status      enum.SaleStatus `gorm:"size:20;not null;index" json:"status"`

	// Customer snapshot, embedded because tickets print whatever was
	// captured at sale time even if the directory entry changes later.
	CustomerName    string `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone   string `gorm:"size:50" json:"customer_phone,omitempty"`
	CustomerAddress string `gorm:"type:text" json:"customer_address,omitempty"`
	CustomerTaxID   string `gorm:"size:50" json:"customer_tax_id,omitempty"`
	TaxExempt       bool   `gorm:"default:false" json:"tax_exempt"`
	DriverName      string `gorm:"size:255" json:"driver_name,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Payments []Payment  `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// ItemsSubTotal sums price*quantity over the line items
func (s *Sale) ItemsSubTotal() int64 {
	var sum int64
	for _, it := range s.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

// ExpectedTotal computes max(0, subtotal - discount) + deliveryFee
func (s *Sale) ExpectedTotal() int64 {
	t := s.SubTotal - s.Discount
	if t < 0 {
		t = 0
	}
	return t + s.DeliveryFee
}

// SaleItem is one product line on a sale. The product name and unit
// price are copied from the catalog at sale time.
type SaleItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	UnitPrice   int64          `gorm:"not null" json:"unit_price"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// LineTotal returns unit price times quantity
func (i *SaleItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Payment is one instrument applied toward a sale's total
type Payment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID          `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	Method    enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	Amount    int64              `gorm:"not null" json:"amount"`
	Reference string             `gorm:"size:255" json:"reference,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
