package enum

// SaleStatus represents the payment status of a sale
type SaleStatus string

const (
	// SaleStatusPending means no payment has been applied yet
	SaleStatusPending SaleStatus = "pending"
	// SaleStatusPartial means payments cover part of the total
	SaleStatusPartial SaleStatus = "partial"
	// SaleStatusCompleted means payments meet or exceed the total
	SaleStatusCompleted SaleStatus = "completed"
	// SaleStatusCancelled means the sale was voided after recording
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Valid reports whether the value is a known sale status
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPartial, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}
