package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest una línea de la orden. PrecioUnitario opcional:
// si viene vacío o en cero se toma el precio actual del producto.
type CreateOrderItemRequest struct {
	ProductoID     string           `json:"producto_id" validate:"required,uuid"`
	Cantidad       int64            `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
}

// CreateOrderRequest entrada para crear una orden.
// Fecha y Total opcionales: se derivan si no vienen.
type CreateOrderRequest struct {
	UsuarioID string                   `json:"usuario_id" validate:"omitempty,uuid"`
	Fecha     *time.Time               `json:"fecha"`
	Total     *decimal.Decimal         `json:"total"`
	Items     []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemResponse salida de una línea de orden.
type OrderItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden con sus ítems.
type OrderResponse struct {
	ID        string              `json:"id"`
	UsuarioID string              `json:"usuario_id"`
	Fecha     time.Time           `json:"fecha"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
