package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden. Los ítems se insertan con CreateItem.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `INSERT INTO ordenes (id, usuario_id, fecha, total) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, order.ID, order.UserID, order.Fecha, order.Total)
	if err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// CreateItem persiste un ítem de orden.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO orden_items (id, orden_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert orden item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con sus ítems. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		`SELECT id, usuario_id, fecha, total FROM ordenes WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.Fecha, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden by id: %w", err)
	}
	items, err := r.listItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List lista órdenes con paginación, cada una con sus ítems.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, usuario_id, fecha, total FROM ordenes ORDER BY fecha DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Fecha, &o.Total); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Cargar ítems fuera del cursor principal: pgx no permite consultas
	// anidadas sobre la misma conexión mientras rows sigue abierto.
	for _, o := range list {
		items, err := r.listItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

func (r *OrderRepo) listItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, orden_id, producto_id, cantidad, precio_unitario
		 FROM orden_items WHERE orden_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list orden items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan orden item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Delete elimina la orden; orden_items cae por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM ordenes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete orden: %w", err)
	}
	return nil
}
