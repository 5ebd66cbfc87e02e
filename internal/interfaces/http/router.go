package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supir/suministros-api/internal/application/auth"
	"github.com/supir/suministros-api/internal/application/feed"
	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC         *usecase.SupplierUseCase
	SupplyItemUC       *usecase.SupplyItemUseCase
	AuthUC             *auth.AuthUseCase
	Importer           *feed.Importer
	AlertPDF           *pdf.AlertReportGenerator
	FeedPath           string
	NearExpirationDays int
	JWTSecret          string
}

// Router registra las rutas de la API. Las lecturas son públicas; toda
// escritura (y la importación) requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := AuthMiddleware(deps.JWTSecret)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:code", supplierHandler.GetByCode)
	suppliers.Post("/", protected, supplierHandler.Create)
	suppliers.Put("/:code", protected, supplierHandler.Update)
	suppliers.Delete("/:code", protected, supplierHandler.Delete)
	suppliers.Post("/batch-delete", protected, supplierHandler.DeleteMany)

	// Supply items
	items := api.Group("/items")
	itemHandler := NewSupplyItemHandler(deps.SupplyItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:barcode", itemHandler.GetByBarcode)
	items.Post("/", protected, itemHandler.Create)
	items.Put("/:barcode", protected, itemHandler.Update)
	items.Delete("/:barcode", protected, itemHandler.Delete)
	items.Post("/batch-delete", protected, itemHandler.DeleteMany)

	// Alertas (solo lectura)
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.SupplyItemUC, deps.AlertPDF, deps.NearExpirationDays)
	alerts.Get("/low-stock", alertHandler.LowStock)
	alerts.Get("/near-expiration", alertHandler.NearExpiration)
	alerts.Get("/report.pdf", alertHandler.Report)

	// Importación del feed Supir
	importHandler := NewImportHandler(deps.Importer, deps.FeedPath)
	api.Post("/import", protected, importHandler.Import)
}
