package ticket

import (
	"fmt"
	"strings"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
)

// DefaultClosingMessage is printed at the bottom of the client ticket
// when no closing message is configured.
const DefaultClosingMessage = "¡Gracias por su compra!"

const dateLayout = "02/01/2006 15:04"

// RenderKitchen builds the kitchen comanda for a sale. The comanda
// never shows prices, regardless of configuration; the kitchen only
// needs quantities and product names.
func RenderKitchen(sale *entity.Sale, cfg *entity.PrintFormatConfig) Document {
	b := &builder{}

	// Header
	b.align(AlignCenter)
	b.emphasis(true)
	b.size(ParseTextSize(cfg.ComandaTitleSize))
	b.text("COMANDA COCINA")
	b.size(SizeNormal)
	if cfg.BusinessName != "" {
		b.text(cfg.BusinessName)
	}
	b.emphasis(false)
	b.divider()

	// Metadata
	b.align(AlignLeft)
	b.text(fmt.Sprintf("Pedido #%d", sale.Number))
	b.text(sale.SaleDate.Format(dateLayout))
	b.text(sale.OrderType.Label())
	b.divider()

	// Items, emphasized so the kitchen can read them at a distance
	b.emphasis(true)
	b.size(ParseTextSize(cfg.ComandaProductSize))
	for _, it := range sale.Items {
		b.text(fmt.Sprintf("%dx%s", it.Quantity, it.ProductName))
	}
	b.size(SizeNormal)
	b.emphasis(false)
	b.divider()

	if note := strings.TrimSpace(sale.Note); note != "" {
		b.emphasis(true)
		b.text("Nota: " + note)
		b.emphasis(false)
		b.divider()
	}

	// Customer details only matter to the kitchen for deliveries
	if sale.OrderType == enum.OrderTypeDelivery && sale.CustomerName != "" {
		b.text("Cliente: " + sale.CustomerName)
		if sale.CustomerPhone != "" {
			b.text("Tel: " + sale.CustomerPhone)
		}
		if sale.CustomerAddress != "" {
			b.text("Dir: " + sale.CustomerAddress)
		}
		b.divider()
	}

	for _, label := range cfg.ComandaCustomFields {
		if label = strings.TrimSpace(label); label != "" {
			b.text(label + ": ____________")
		}
	}

	b.align(AlignCenter)
	b.divider()
	b.cut()
	return b.doc
}

// RenderClient builds the customer-facing ticket with prices, totals
// and the payment summary.
func RenderClient(sale *entity.Sale, cfg *entity.PrintFormatConfig) Document {
	b := &builder{}

	// Header: configured custom header wins over the business name
	header := cfg.BusinessName
	if cfg.TicketCustomHeader != "" {
		header = cfg.TicketCustomHeader
	}
	b.align(AlignCenter)
	b.emphasis(true)
	b.size(ParseTextSize(cfg.TicketHeaderSize))
	b.text(header)
	b.size(SizeNormal)
	b.emphasis(false)
	if cfg.BusinessAddress != "" {
		b.text(cfg.BusinessAddress)
	}
	if cfg.BusinessPhone != "" {
		b.text("Tel: " + cfg.BusinessPhone)
	}
	if cfg.BusinessTaxID != "" {
		b.text("RUC: " + cfg.BusinessTaxID)
	}
	if cfg.BusinessExtraLine != "" {
		b.text(cfg.BusinessExtraLine)
	}
	b.divider()

	// Metadata; the client ticket does not show the order type
	b.align(AlignLeft)
	b.text(fmt.Sprintf("Ticket #%d", sale.Number))
	b.text(sale.SaleDate.Format(dateLayout))
	b.divider()

	// Items with a price sub-line per product
	productSize := ParseTextSize(cfg.TicketProductSize)
	for _, it := range sale.Items {
		b.size(productSize)
		b.text(fmt.Sprintf("%dx%s", it.Quantity, it.ProductName))
		b.size(SizeNormal)
		b.text(fmt.Sprintf("  %s x %d = %s",
			GroupThousands(it.UnitPrice), it.Quantity, GroupThousands(it.LineTotal())))
	}
	if sale.OrderType == enum.OrderTypeDelivery && sale.DeliveryFee > 0 {
		label := "Delivery"
		if sale.DriverName != "" {
			label = fmt.Sprintf("Delivery (%s)", sale.DriverName)
		}
		b.size(productSize)
		b.text("1x" + label)
		b.size(SizeNormal)
		b.text(fmt.Sprintf("  %s x 1 = %s",
			GroupThousands(sale.DeliveryFee), GroupThousands(sale.DeliveryFee)))
	}
	b.divider()

	// Customer block whenever a name was captured
	if sale.CustomerName != "" {
		b.text("Cliente: " + sale.CustomerName)
		if sale.CustomerPhone != "" {
			b.text("Tel: " + sale.CustomerPhone)
		}
		if sale.CustomerTaxID != "" {
			b.text("RUC: " + sale.CustomerTaxID)
		}
		b.divider()
	}

	// Totals. The subtotal line uses the sale's own subtotal field,
	// not the total; discounts must stay visible.
	b.text("Subtotal: " + FormatGs(sale.SubTotal))
	if sale.Discount > 0 {
		b.text("Descuento: -" + FormatGs(sale.Discount))
	}
	b.emphasis(true)
	b.size(ParseTextSize(cfg.TicketTotalSize))
	b.text("TOTAL: " + FormatGs(sale.Total))
	b.size(SizeNormal)
	b.emphasis(false)
	if summary := paymentSummary(sale.Payments); summary != "" {
		b.text("Pago: " + summary)
	}
	b.divider()

	closing := cfg.TicketClosingMessage
	if closing == "" {
		closing = DefaultClosingMessage
	}
	b.align(AlignCenter)
	b.text(closing)
	b.divider()
	b.cut()
	return b.doc
}

// RenderTest builds the fixed diagnostic document used to validate a
// printer configuration end to end.
func RenderTest(businessName string) Document {
	b := &builder{}
	b.align(AlignCenter)
	b.emphasis(true)
	b.size(SizeDouble)
	b.text("PRUEBA DE IMPRESION")
	b.size(SizeNormal)
	b.emphasis(false)
	if businessName != "" {
		b.text(businessName)
	}
	b.divider()
	b.align(AlignLeft)
	b.text("Impresora configurada")
	b.text("correctamente.")
	b.divider()
	b.cut()
	return b.doc
}

// paymentSummary joins the distinct method labels in first-use order
func paymentSummary(payments []entity.Payment) string {
	var labels []string
	seen := make(map[enum.PaymentMethod]bool)
	for _, p := range payments {
		if !seen[p.Method] {
			seen[p.Method] = true
			labels = append(labels, p.Method.Label())
		}
	}
	return strings.Join(labels, ", ")
}
