package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/dvillalba/fogonpos-api/internal/domain/entity"
	"github.com/dvillalba/fogonpos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *entity.PrintFormatConfig {
	cfg := entity.DefaultPrintFormatConfig()
	cfg.BusinessName = "Lomitería El Fogón"
	return cfg
}

func testSale() *entity.Sale {
	return &entity.Sale{
		Number:    17,
		SaleDate:  time.Date(2025, 3, 14, 20, 30, 0, 0, time.UTC),
		OrderType: enum.OrderTypePickup,
		SubTotal:  60000,
		Total:     60000,
		Items: []entity.SaleItem{
			{ProductName: "Hamburguesa", UnitPrice: 25000, Quantity: 2},
			{ProductName: "Coca 500ml", UnitPrice: 10000, Quantity: 1},
		},
		Payments: []entity.Payment{
			{Method: enum.PaymentMethodCash, Amount: 60000},
		},
	}
}

func joinLines(doc Document) string {
	return strings.Join(doc.Lines(), "\n")
}

func TestRenderClientShowsPricesAndTotal(t *testing.T) {
	out := joinLines(RenderClient(testSale(), testConfig()))

	assert.Contains(t, out, "Ticket #17")
	assert.Contains(t, out, "2xHamburguesa")
	assert.Contains(t, out, "  25.000 x 2 = 50.000")
	assert.Contains(t, out, "1xCoca 500ml")
	assert.Contains(t, out, "  10.000 x 1 = 10.000")
	assert.Contains(t, out, "Subtotal: Gs. 60.000")
	assert.Contains(t, out, "TOTAL: Gs. 60.000")
	assert.Contains(t, out, "Pago: Efectivo")
}

func TestRenderClientSubtotalIsNotTheTotal(t *testing.T) {
	sale := testSale()
	sale.Discount = 5000
	sale.Total = 55000

	out := joinLines(RenderClient(sale, testConfig()))

	assert.Contains(t, out, "Subtotal: Gs. 60.000")
	assert.Contains(t, out, "Descuento: -Gs. 5.000")
	assert.Contains(t, out, "TOTAL: Gs. 55.000")
}

func TestRenderClientNoDiscountLineWhenZero(t *testing.T) {
	out := joinLines(RenderClient(testSale(), testConfig()))
	assert.NotContains(t, out, "Descuento")
}

func TestRenderClientDeliveryLine(t *testing.T) {
	sale := testSale()
	sale.OrderType = enum.OrderTypeDelivery
	sale.CustomerName = "Ana"
	sale.DriverName = "Pedro"
	sale.DeliveryFee = 10000
	sale.Total = 70000

	out := joinLines(RenderClient(sale, testConfig()))

	assert.Contains(t, out, "1xDelivery (Pedro)")
	assert.Contains(t, out, "  10.000 x 1 = 10.000")
	assert.Contains(t, out, "Cliente: Ana")
}

func TestRenderClientDeliveryLineWithoutDriver(t *testing.T) {
	sale := testSale()
	sale.OrderType = enum.OrderTypeDelivery
	sale.DeliveryFee = 10000

	out := joinLines(RenderClient(sale, testConfig()))

	assert.Contains(t, out, "1xDelivery")
	assert.NotContains(t, out, "Delivery (")
}

func TestRenderClientNoDeliveryLineForPickup(t *testing.T) {
	sale := testSale()
	sale.DeliveryFee = 10000 // stale fee on a pickup order must not print

	out := joinLines(RenderClient(sale, testConfig()))
	assert.NotContains(t, out, "Delivery")
}

func TestRenderClientHeaderAndClosing(t *testing.T) {
	cfg := testConfig()
	cfg.BusinessAddress = "Avda. España 1234"
	cfg.BusinessPhone = "021-555-000"
	cfg.BusinessTaxID = "80012345-6"

	out := joinLines(RenderClient(testSale(), cfg))

	assert.Contains(t, out, "Lomitería El Fogón")
	assert.Contains(t, out, "Tel: 021-555-000")
	assert.Contains(t, out, "RUC: 80012345-6")
	assert.Contains(t, out, DefaultClosingMessage)

	cfg.TicketCustomHeader = "EL FOGÓN EXPRESS"
	cfg.TicketClosingMessage = "¡Vuelva pronto!"
	out = joinLines(RenderClient(testSale(), cfg))

	assert.Contains(t, out, "EL FOGÓN EXPRESS")
	assert.NotContains(t, out, DefaultClosingMessage)
	assert.Contains(t, out, "¡Vuelva pronto!")
}

func TestRenderClientPaymentSummaryDistinctMethods(t *testing.T) {
	sale := testSale()
	sale.Payments = []entity.Payment{
		{Method: enum.PaymentMethodCash, Amount: 20000},
		{Method: enum.PaymentMethodQR, Amount: 20000},
		{Method: enum.PaymentMethodCash, Amount: 20000},
	}

	out := joinLines(RenderClient(sale, testConfig()))
	assert.Contains(t, out, "Pago: Efectivo, QR")
}

func TestRenderKitchenNeverShowsPrices(t *testing.T) {
	cfg := testConfig()
	cfg.ComandaShowPrices = true // must be ignored

	out := joinLines(RenderKitchen(testSale(), cfg))

	assert.Contains(t, out, "COMANDA COCINA")
	assert.Contains(t, out, "2xHamburguesa")
	assert.Contains(t, out, "1xCoca 500ml")
	assert.NotContains(t, out, "25.000")
	assert.NotContains(t, out, "60.000")
	assert.NotContains(t, out, "Gs.")
	assert.NotContains(t, out, "TOTAL")
}

func TestRenderKitchenMetadata(t *testing.T) {
	out := joinLines(RenderKitchen(testSale(), testConfig()))

	assert.Contains(t, out, "Pedido #17")
	assert.Contains(t, out, "14/03/2025 20:30")
	assert.Contains(t, out, "RETIRO")
}

func TestRenderKitchenNote(t *testing.T) {
	sale := testSale()
	out := joinLines(RenderKitchen(sale, testConfig()))
	assert.NotContains(t, out, "Nota:")

	sale.Note = "sin cebolla"
	out = joinLines(RenderKitchen(sale, testConfig()))
	assert.Contains(t, out, "Nota: sin cebolla")
}

func TestRenderKitchenCustomerOnlyForDelivery(t *testing.T) {
	sale := testSale()
	sale.CustomerName = "Ana"
	sale.CustomerPhone = "0981 123456"
	sale.CustomerAddress = "Mcal. López 100"

	out := joinLines(RenderKitchen(sale, testConfig()))
	assert.NotContains(t, out, "Cliente:")

	sale.OrderType = enum.OrderTypeDelivery
	out = joinLines(RenderKitchen(sale, testConfig()))
	assert.Contains(t, out, "Cliente: Ana")
	assert.Contains(t, out, "Tel: 0981 123456")
	assert.Contains(t, out, "Dir: Mcal. López 100")
}

func TestRenderKitchenCustomFields(t *testing.T) {
	cfg := testConfig()
	cfg.ComandaCustomFields = []string{"Mesa", "  ", "Mozo"}

	out := joinLines(RenderKitchen(testSale(), cfg))

	assert.Contains(t, out, "Mesa: ____________")
	assert.Contains(t, out, "Mozo: ____________")
}

func TestRenderIsDeterministic(t *testing.T) {
	sale := testSale()
	cfg := testConfig()

	first := EncodeESCPOS(RenderKitchen(sale, cfg), 32)
	second := EncodeESCPOS(RenderKitchen(sale, cfg), 32)
	assert.Equal(t, first, second)

	first = EncodeESCPOS(RenderClient(sale, cfg), 32)
	second = EncodeESCPOS(RenderClient(sale, cfg), 32)
	assert.Equal(t, first, second)
}

func TestRenderTest(t *testing.T) {
	doc := RenderTest("Lomitería El Fogón")
	out := joinLines(doc)

	assert.Contains(t, out, "PRUEBA DE IMPRESION")
	assert.Contains(t, out, "Lomitería El Fogón")
	require.NotEmpty(t, doc)
	assert.Equal(t, OpCut, doc[len(doc)-1].Kind)
}
