package enum

// PaymentMethod identifies the instrument used for a payment
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodQR       PaymentMethod = "qr"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

// Valid reports whether the value is a known payment method
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodQR, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Label returns the printable Spanish label used on tickets
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Efectivo"
	case PaymentMethodQR:
		return "QR"
	case PaymentMethodCard:
		return "Tarjeta"
	case PaymentMethodTransfer:
		return "Transferencia"
	case PaymentMethodOther:
		return "Otro"
	}
	return string(m)
}
