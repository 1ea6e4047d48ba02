package orders

import (
	"context"
	"fmt"

	"github.com/vivitasol/tienda-api/internal/domain"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

// PDFUseCase genera la boleta (PDF) de una orden.
type PDFUseCase struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	generator   ReceiptGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadReceipt recupera la orden con su usuario y productos y genera la boleta.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe.
//   - error envuelto             si el render falla (el handler lo mapea a 500).
func (uc *PDFUseCase) DownloadReceipt(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("boleta: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	customerName := ""
	if user, uErr := uc.userRepo.GetByID(order.UserID); uErr == nil && user != nil {
		customerName = user.Name
	}

	lines := make([]ReceiptLine, 0, len(order.Items))
	for _, it := range order.Items {
		name := "Producto " + it.ProductID // fallback si el producto ya no existe
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal(),
		})
	}

	data := &ReceiptData{
		OrderID:      order.ID,
		Fecha:        order.Fecha,
		CustomerName: customerName,
		Lines:        lines,
		Total:        order.Total,
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("boleta: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("boleta_orden_%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
