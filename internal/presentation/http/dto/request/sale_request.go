package request

import (
	"github.com/dvillalba/fogonpos-api/internal/application/service"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/dvillalba/fogonpos-api/pkg/pagination"
	"github.com/google/uuid"
)

// CreateSaleItemRequest is one cart line when recording a sale
type CreateSaleItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Name      string     `json:"name" binding:"required"`
	Price     int64      `json:"price" binding:"min=0"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
}

// CreateSalePaymentRequest is one tendered payment when recording a sale
type CreateSalePaymentRequest struct {
	Method    enum.PaymentMethod `json:"method" binding:"required"`
	Amount    int64              `json:"amount" binding:"required"`
	Reference string             `json:"reference"`
}

// CreateSaleRequest represents the create sale request body
type CreateSaleRequest struct {
	OrderType       enum.OrderType             `json:"order_type" binding:"required"`
	Items           []CreateSaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Discount        int64                      `json:"discount" binding:"min=0"`
	DeliveryFee     int64                      `json:"delivery_fee" binding:"min=0"`
	Note            string                     `json:"note"`
	CustomerName    string                     `json:"customer_name"`
	CustomerPhone   string                     `json:"customer_phone"`
	CustomerAddress string                     `json:"customer_address"`
	CustomerTaxID   string                     `json:"customer_tax_id"`
	TaxExempt       bool                       `json:"tax_exempt"`
	DriverName      string                     `json:"driver_name"`
	Payments        []CreateSalePaymentRequest `json:"payments" binding:"dive"`
	AllowPartial    bool                       `json:"allow_partial"`
}

// ToInput converts the request into the service input
func (r *CreateSaleRequest) ToInput() *service.CreateSaleInput {
	input := &service.CreateSaleInput{
		OrderType:       r.OrderType,
		Discount:        r.Discount,
		DeliveryFee:     r.DeliveryFee,
		Note:            r.Note,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		CustomerTaxID:   r.CustomerTaxID,
		TaxExempt:       r.TaxExempt,
		DriverName:      r.DriverName,
		AllowPartial:    r.AllowPartial,
	}
	for _, it := range r.Items {
		input.Items = append(input.Items, service.SaleItemInput{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			UnitPrice:   it.Price,
			Quantity:    it.Quantity,
		})
	}
	for _, p := range r.Payments {
		input.Payments = append(input.Payments, service.SalePaymentInput{
			Method:    p.Method,
			Amount:    p.Amount,
			Reference: p.Reference,
		})
	}
	return input
}

// ListSalesRequest represents the sale list query parameters
type ListSalesRequest struct {
	pagination.PaginationParams
	From      string `form:"from"`
	To        string `form:"to"`
	Status    string `form:"status"`
	OrderType string `form:"order_type"`
}
