package enum

// OrderType identifies how a sale is fulfilled
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDineIn   OrderType = "dineIn"
)

// Valid reports whether the value is a known order type
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDelivery, OrderTypePickup, OrderTypeDineIn:
		return true
	}
	return false
}

// Label returns the printable Spanish label used on tickets
func (t OrderType) Label() string {
	switch t {
	case OrderTypeDelivery:
		return "DELIVERY"
	case OrderTypePickup:
		return "RETIRO"
	case OrderTypeDineIn:
		return "MESA"
	}
	return string(t)
}
