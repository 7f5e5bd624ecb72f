package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pope-market/internal/application/auth"
	"github.com/jhoicas/pope-market/internal/application/orders"
	"github.com/jhoicas/pope-market/internal/application/usecase"
	"github.com/jhoicas/pope-market/internal/domain/entity"
	"github.com/jhoicas/pope-market/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *orders.OrderUseCase
	ReceiptUC *orders.ReceiptUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren sesión abierta)
	protected := api.Group("/", RequireSession(deps.AuthUC))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC, log)
	products.Get("/", productHandler.List)
	products.Post("/", RequireRole(entity.RoleProducer), productHandler.Publish)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/reservations", RequireRole(entity.RoleWholesaler), orderHandler.Reserve)

	ordersGroup := protected.Group("/orders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", RequireRole(entity.RoleProducer), orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)
}
