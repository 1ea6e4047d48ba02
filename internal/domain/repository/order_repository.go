package repository

import "github.com/vivitasol/tienda-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus ítems (DIP).
// GetByID devuelve la orden con sus ítems cargados, o (nil, nil) si no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	// Delete elimina la orden; los ítems caen en cascada.
	Delete(id string) error
}
