package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int64           `json:"stock" validate:"min=0"`
	ImagenURL   string          `json:"imagen_url"`
	CategoriaID string          `json:"categoria_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto (stock se maneja aparte).
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	ImagenURL   *string          `json:"imagen_url"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
}

// StockRequest entrada para fijar o reducir stock.
type StockRequest struct {
	Cantidad int64 `json:"cantidad"`
}

// ImageRequest entrada para actualizar la imagen de un producto.
type ImageRequest struct {
	ImagenURL string `json:"imagen_url" validate:"required,max=500"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int64           `json:"stock"`
	ImagenURL   string          `json:"imagen_url"`
	Activo      bool            `json:"activo"`
	CategoriaID string          `json:"categoria_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
