package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra de un usuario.
// La orden es dueña exclusiva de sus ítems (borrado en cascada).
type Order struct {
	ID     string
	UserID string
	Fecha  time.Time       // se asigna now() si el cliente no la envía
	Total  decimal.Decimal // derivado de los ítems si el cliente no lo envía
	Items  []OrderItem
}

// OrderItem es una línea (producto, cantidad, precio unitario) dentro de una orden.
// UnitPrice es una foto del precio del producto al momento de crear la orden,
// no un enlace vivo.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal de la línea: cantidad × precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitPrice)
}

// ComputeTotal suma los subtotales de todos los ítems.
func (o Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
