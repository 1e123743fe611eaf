package request

import (
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
)

// SalePayload is the sale-like document the frontend posts to the
// print endpoints. Printing works on whatever the UI sends; the sale
// does not have to be persisted first.
type SalePayload struct {
	Number    int                  `json:"number"`
	Date      time.Time            `json:"date"`
	OrderType enum.OrderType       `json:"orderType" binding:"required"`
	Items     []SaleItemPayload    `json:"items" binding:"required,min=1,dive"`
	SubTotal  int64                `json:"subtotal"`
	Discount  int64                `json:"discount"`
	Delivery  int64                `json:"deliveryCost"`
	Total     int64                `json:"total"`
	Note      string               `json:"note"`
	Customer  *CustomerPayload     `json:"customer"`
	Driver    string               `json:"driver"`
	Payments  []SalePaymentPayload `json:"payments"`
}

// SaleItemPayload is one cart line in a print payload
type SaleItemPayload struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CustomerPayload is the customer block in a print payload
type CustomerPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

// SalePaymentPayload is one payment entry in a print payload
type SalePaymentPayload struct {
	Method    enum.PaymentMethod `json:"method"`
	Amount    int64              `json:"amount"`
	Reference string             `json:"reference"`
}

// ToSale converts the payload into the domain shape the renderer reads
func (p *SalePayload) ToSale() *entity.Sale {
	sale := &entity.Sale{
		Number:      p.Number,
		SaleDate:    p.Date,
		OrderType:   p.OrderType,
		SubTotal:    p.SubTotal,
		Discount:    p.Discount,
		DeliveryFee: p.Delivery,
		Total:       p.Total,
		Note:        p.Note,
		DriverName:  p.Driver,
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}
	if p.Customer != nil {
		sale.CustomerName = p.Customer.Name
		sale.CustomerPhone = p.Customer.Phone
		sale.CustomerAddress = p.Customer.Address
		sale.CustomerTaxID = p.Customer.TaxID
	}
	for _, it := range p.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductName: it.Name,
			UnitPrice:   it.Price,
			Quantity:    it.Quantity,
		})
	}
	for _, pay := range p.Payments {
		sale.Payments = append(sale.Payments, entity.Payment{
			Method:    pay.Method,
			Amount:    pay.Amount,
			Reference: pay.Reference,
		})
	}
	return sale
}

// PrintDocumentRequest is the body for the single-document print
// endpoints. PrinterIndex is a pointer so index 0 survives binding.
type PrintDocumentRequest struct {
	Data         SalePayload `json:"data" binding:"required"`
	PrinterIndex *int        `json:"printerIndex" binding:"required"`
	Copies       int         `json:"copies"`
}

// PrintBothRequest is the body for the combined kitchen+client print
type PrintBothRequest struct {
	Data           SalePayload `json:"data" binding:"required"`
	KitchenPrinter *int        `json:"kitchenPrinter" binding:"required"`
	ClientPrinter  *int        `json:"clientPrinter" binding:"required"`
	Copies         int         `json:"copies"`
}

// TestPrintRequest is the body for the diagnostic print
type TestPrintRequest struct {
	PrinterIndex *int `json:"printerIndex" binding:"required"`
}
