package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos de producto y orden
// atados a ella. Lo implementa postgres.TxRunner. La creación de orden lo usa
// para que los N descuentos de stock y la inserción de la orden sean atómicos:
// si una línea falla, ninguna queda aplicada.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReceiptLine una línea de la boleta: nombre del producto, cantidad y subtotal.
type ReceiptLine struct {
	ProductName string
	Quantity    int64
	Subtotal    decimal.Decimal
}

// ReceiptData datos ya resueltos para renderizar la boleta de una orden.
type ReceiptData struct {
	OrderID      string
	Fecha        time.Time
	CustomerName string
	Lines        []ReceiptLine
	Total        decimal.Decimal
}

// ReceiptGenerator renderiza la boleta como PDF. Lo implementa pdf.MarotoReceiptGenerator.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data *ReceiptData) ([]byte, error)
}
