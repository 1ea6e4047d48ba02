package usecase

import (
	"context"

	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un ProductRepository atado a ella.
// Lo implementa postgres.TxRunner; las mutaciones de stock lo usan junto con
// GetByIDForUpdate para que verificación y descuento sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
