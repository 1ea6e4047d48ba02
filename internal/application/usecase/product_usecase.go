package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vivitasol/tienda-api/internal/application/dto"
	"github.com/vivitasol/tienda-api/internal/domain"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos más control de stock.
// Las mutaciones de stock corren en transacción con bloqueo de fila para que
// dos descuentos concurrentes no dejen el stock negativo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRunner     TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create crea un producto. Stock negativo se rechaza; la categoría, si viene, debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoriaID != "" {
		cat, err := uc.categoryRepo.GetByID(in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Nombre,
		Description: in.Descripcion,
		Price:       in.Precio,
		Stock:       in.Stock,
		ImageURL:    in.ImagenURL,
		Active:      true,
		CategoryID:  in.CategoriaID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, descripción, precio, imagen y categoría (stock se maneja aparte).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		product.Name = *in.Nombre
	}
	if in.Descripcion != nil {
		product.Description = *in.Descripcion
	}
	if in.Precio != nil {
		product.Price = *in.Precio
	}
	if in.ImagenURL != nil {
		product.ImageURL = *in.ImagenURL
	}
	if in.CategoriaID != nil {
		if *in.CategoriaID != "" {
			cat, err := uc.categoryRepo.GetByID(*in.CategoriaID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoriaID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// SetStock fija el stock en un valor absoluto. Cantidad negativa es inválida;
// no hay otro tope. Corre en transacción con la fila bloqueada.
func (uc *ProductUseCase) SetStock(ctx context.Context, id string, cantidad int64) (*dto.ProductResponse, error) {
	if cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Stock = cantidad
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateStock(product.ID, product.Stock); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// ReduceStock descuenta cantidad del stock. La fila se bloquea (SELECT FOR UPDATE)
// para que la verificación de suficiencia y el descuento sean atómicos: sin stock
// suficiente retorna ErrInsufficientStock y no modifica nada.
func (uc *ProductUseCase) ReduceStock(ctx context.Context, id string, cantidad int64) (*dto.ProductResponse, error) {
	if cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < cantidad {
			return domain.ErrInsufficientStock
		}
		product.Stock -= cantidad
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateStock(product.ID, product.Stock); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Activate marca el producto como activo.
func (uc *ProductUseCase) Activate(id string) (*dto.ProductResponse, error) {
	return uc.setActive(id, true)
}

// Deactivate marca el producto como inactivo (no se elimina del catálogo).
func (uc *ProductUseCase) Deactivate(id string) (*dto.ProductResponse, error) {
	return uc.setActive(id, false)
}

func (uc *ProductUseCase) setActive(id string, active bool) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Active = active
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateImage reemplaza la URL de imagen del producto.
func (uc *ProductUseCase) UpdateImage(id, imagenURL string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.ImageURL = imagenURL
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      p.Price,
		Stock:       p.Stock,
		ImagenURL:   p.ImageURL,
		Activo:      p.Active,
		CategoriaID: p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
