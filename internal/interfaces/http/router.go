package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vivitasol/tienda-api/internal/application/auth"
	"github.com/vivitasol/tienda-api/internal/application/orders"
	"github.com/vivitasol/tienda-api/internal/application/usecase"
	"github.com/vivitasol/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *orders.OrderUseCase
	PDFUC      *orders.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authed := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Productos: lectura pública, mutaciones solo ADMIN
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authed, adminOnly, productHandler.Create)
	products.Put("/:id", authed, adminOnly, productHandler.Update)
	products.Delete("/:id", authed, adminOnly, productHandler.Delete)
	products.Post("/:id/stock", authed, adminOnly, productHandler.SetStock)
	products.Post("/:id/reducir-stock", authed, adminOnly, productHandler.ReduceStock)
	products.Post("/:id/imagen", authed, adminOnly, productHandler.UpdateImage)
	products.Patch("/:id/activar", authed, adminOnly, productHandler.Activate)
	products.Patch("/:id/desactivar", authed, adminOnly, productHandler.Deactivate)

	// Categorías: lectura pública, mutaciones solo ADMIN
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authed, adminOnly, categoryHandler.Create)
	categories.Put("/:id", authed, adminOnly, categoryHandler.Update)
	categories.Delete("/:id", authed, adminOnly, categoryHandler.Delete)

	// Usuarios: registro público (rol forzado a CLIENTE si no es ADMIN),
	// gestión solo ADMIN
	users := api.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", OptionalAuthMiddleware(deps.JWTSecret), userHandler.Create)
	users.Get("/", authed, adminOnly, userHandler.List)
	users.Get("/:id", authed, adminOnly, userHandler.GetByID)
	users.Put("/:id", authed, adminOnly, userHandler.Update)
	users.Delete("/:id", authed, adminOnly, userHandler.Delete)
	users.Patch("/:id/inhabilitar", authed, adminOnly, userHandler.Disable)

	// Perfil del usuario autenticado
	perfil := api.Group("/perfil", authed)
	perfil.Get("/", userHandler.GetProfile)
	perfil.Put("/", userHandler.UpdateProfile)

	// Órdenes: cualquier usuario autenticado
	ordersGroup := api.Group("/ordenes", authed)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PDFUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/boleta", orderHandler.DownloadReceipt)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Delete("/:id", orderHandler.Delete)
}
