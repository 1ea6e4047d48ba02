package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivitasol/tienda-api/internal/application/dto"
	"github.com/vivitasol/tienda-api/internal/application/usecase"
	"github.com/vivitasol/tienda-api/internal/domain"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
	"github.com/vivitasol/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int64) error {
	if p, ok := r.products[productID]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// fakeTxRunner ejecuta el callback contra el repo en memoria; si falla,
// restaura el stock previo como haría el ROLLBACK real.
type fakeTxRunner struct {
	repo *fakeProductRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository) error) error {
	snapshot := make(map[string]int64, len(tx.repo.products))
	for id, p := range tx.repo.products {
		snapshot[id] = p.Stock
	}
	if err := fn(tx.repo); err != nil {
		for id, stock := range snapshot {
			if p, ok := tx.repo.products[id]; ok {
				p.Stock = stock
			}
		}
		return err
	}
	return nil
}

func buildProductUC() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	repo := newFakeProductRepo()
	catRepo := newFakeCategoryRepo()
	uc := usecase.NewProductUseCase(repo, catRepo, &fakeTxRunner{repo: repo})
	return uc, repo, catRepo
}

func seedProduct(repo *fakeProductRepo, id string, stock int64) {
	repo.products[id] = &entity.Product{
		ID:     id,
		Name:   "Polera estampada",
		Price:  decimal.NewFromInt(12990),
		Stock:  stock,
		Active: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_StockNegativoRechazado(t *testing.T) {
	uc, _, _ := buildProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		Nombre: "Polera",
		Precio: decimal.NewFromInt(9990),
		Stock:  -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"stock inicial negativo debe rechazarse")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _ := buildProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		Nombre:      "Polera",
		Precio:      decimal.NewFromInt(9990),
		Stock:       5,
		CategoriaID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"la categoría referenciada debe existir")
}

func TestProductCreate_OK(t *testing.T) {
	uc, repo, catRepo := buildProductUC()
	catRepo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Ropa"}

	out, err := uc.Create(dto.CreateProductRequest{
		Nombre:      "Polera",
		Precio:      decimal.NewFromInt(9990),
		Stock:       5,
		CategoriaID: "cat-1",
	})
	require.NoError(t, err)
	assert.True(t, out.Activo, "un producto nuevo nace activo")
	assert.Equal(t, int64(5), out.Stock)
	assert.Len(t, repo.products, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStock / ReduceStock
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStock_CantidadNegativaRechazada(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 10)

	_, err := uc.SetStock(context.Background(), "p-1", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), repo.products["p-1"].Stock,
		"el stock no debe cambiar tras un rechazo")
}

func TestSetStock_FijaValorAbsoluto(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 10)

	out, err := uc.SetStock(context.Background(), "p-1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Stock)
	assert.Equal(t, int64(3), repo.products["p-1"].Stock)
}

func TestSetStock_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildProductUC()

	_, err := uc.SetStock(context.Background(), "fantasma", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReduceStock_DescuentaYPersiste(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 10)

	out, err := uc.ReduceStock(context.Background(), "p-1", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Stock, "10 - 4 = 6")
	assert.Equal(t, int64(6), repo.products["p-1"].Stock)
}

func TestReduceStock_InsuficienteNoModifica(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 6)

	_, err := uc.ReduceStock(context.Background(), "p-1", 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"descontar 10 con stock 6 debe fallar")
	assert.Equal(t, int64(6), repo.products["p-1"].Stock,
		"el stock debe quedar intacto tras el rechazo")
}

func TestReduceStock_CantidadNoPositivaRechazada(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 10)

	_, err := uc.ReduceStock(context.Background(), "p-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ReduceStock(context.Background(), "p-1", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReduceStock_HastaCero(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 4)

	out, err := uc.ReduceStock(context.Background(), "p-1", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Stock, "reducir el stock exacto deja cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Activar / Desactivar / Imagen
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivate_NoEliminaDelCatalogo(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 10)

	out, err := uc.Deactivate("p-1")
	require.NoError(t, err)
	assert.False(t, out.Activo)
	assert.Contains(t, repo.products, "p-1", "desactivar no borra el producto")

	out, err = uc.Activate("p-1")
	require.NoError(t, err)
	assert.True(t, out.Activo)
}

func TestUpdateImage_ReemplazaURL(t *testing.T) {
	uc, repo, _ := buildProductUC()
	seedProduct(repo, "p-1", 10)

	out, err := uc.UpdateImage("p-1", "https://cdn.tienda.cl/p-1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.tienda.cl/p-1.jpg", out.ImagenURL)
	assert.Equal(t, "https://cdn.tienda.cl/p-1.jpg", repo.products["p-1"].ImageURL)
}
