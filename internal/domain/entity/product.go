package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Invariante: Stock >= 0 en todo momento; los descuentos que lo dejarían
// negativo se rechazan con ErrInsufficientStock.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta en pesos (unidades enteras)
	Stock       int64
	ImageURL    string
	Active      bool
	CategoryID  string // vacío si no tiene categoría
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
