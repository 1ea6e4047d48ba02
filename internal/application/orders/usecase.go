package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vivitasol/tienda-api/internal/application/dto"
	"github.com/vivitasol/tienda-api/internal/domain"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

// OrderUseCase crea, consulta y elimina órdenes.
type OrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Create crea una orden para userID con las líneas indicadas.
//
// Primero valida fuera de la transacción: usuario existente, cantidades > 0,
// productos existentes; el precio unitario ausente o en cero toma el precio
// actual del producto. Luego, en UNA transacción: bloquea la fila de cada
// producto, verifica suficiencia y descuenta; si alguna línea no tiene stock
// se hace rollback completo (ningún descuento parcial queda aplicado).
// Fecha y total se derivan si el cliente no los envía.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	// Validación de líneas y precio unitario por defecto (solo lectura)
	unitPrices := make([]decimal.Decimal, len(in.Items))
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductoID == "" || item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductoID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if item.PrecioUnitario != nil && item.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.PrecioUnitario == nil || item.PrecioUnitario.IsZero() {
			unitPrices[i] = product.Price
		} else {
			unitPrices[i] = *item.PrecioUnitario
		}
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	order := &entity.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Fecha:  fecha,
	}
	for i, item := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductoID,
			Quantity:  item.Cantidad,
			UnitPrice: unitPrices[i],
		})
	}
	if in.Total != nil {
		order.Total = *in.Total
	} else {
		order.Total = order.ComputeTotal()
	}

	err = uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		// 1) Descontar stock línea por línea con la fila bloqueada.
		for _, item := range order.Items {
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock-item.Quantity); err != nil {
				return err
			}
		}
		// 2) Persistir cabecera e ítems.
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orderRepo.CreateItem(&order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden con sus ítems. Orden inexistente es ErrNotFound
// (nunca un 200 con cuerpo vacío).
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la orden y sus ítems (cascada).
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:        o.ID,
		UsuarioID: o.UserID,
		Fecha:     o.Fecha,
		Total:     o.Total,
		Items:     make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:             it.ID,
			ProductoID:     it.ProductID,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
			Subtotal:       it.Subtotal(),
		})
	}
	return resp
}
