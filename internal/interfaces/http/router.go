package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/beautybook-api/internal/application/auth"
	"github.com/tu-usuario/beautybook-api/internal/application/authz"
	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/application/order"
	"github.com/tu-usuario/beautybook-api/internal/application/reminder"
	"github.com/tu-usuario/beautybook-api/internal/application/report"
	"github.com/tu-usuario/beautybook-api/internal/application/scheduling"
	"github.com/tu-usuario/beautybook-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *usecase.CustomerUseCase
	ServiceUC     *usecase.ServiceUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	SettingsUC    *usecase.SettingsUseCase
	Inventory     *inventory.Manager
	OrderUC       *order.UseCase
	SchedulingUC  *scheduling.UseCase
	ReminderUC    *reminder.UseCase
	ReportUC      *report.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Auth (login público; el resto requiere Bearer Token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Get("/me", authHandler.Me)
	protectedAuth.Put("/profile", authHandler.UpdateProfile)
	protectedAuth.Put("/change-password", authHandler.ChangePassword)

	// Administración de usuarios (solo admin)
	users := protectedAuth.Group("/users", RequireAction(authz.ActionUserManage))
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
	users.Get("/:id", authHandler.GetUser)
	users.Put("/:id", authHandler.UpdateUser)
	users.Put("/:id/password", authHandler.SetPassword)
	users.Delete("/:id", authHandler.DeleteUser)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/birthday/:month", customerHandler.Birthdays)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Get("/:id/history", customerHandler.History)
	customers.Delete("/:id", RequireAction(authz.ActionCustomerDelete), customerHandler.Delete)

	// Services
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.ReportUC)
	services.Post("/", RequireAction(authz.ActionServiceWrite), serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", RequireAction(authz.ActionServiceWrite), serviceHandler.Update)
	services.Get("/:id/stats", serviceHandler.Stats)
	services.Delete("/:id", RequireAction(authz.ActionServiceWrite), serviceHandler.Delete)

	// Categories (taxonomía de productos; escritura de catálogo)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", RequireAction(authz.ActionProductWrite), categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", RequireAction(authz.ActionProductWrite), categoryHandler.Update)
	categories.Delete("/:id", RequireAction(authz.ActionProductWrite), categoryHandler.Delete)

	// Products y ledger de stock
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Inventory)
	products.Get("/stock-movements", productHandler.ListMovements)
	products.Post("/", RequireAction(authz.ActionProductWrite), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireAction(authz.ActionProductWrite), productHandler.Update)
	products.Delete("/:id", RequireAction(authz.ActionProductWrite), productHandler.Delete)
	products.Post("/:id/stock/add", RequireAction(authz.ActionStockWrite), productHandler.AddStock)
	products.Post("/:id/stock/adjust", RequireAction(authz.ActionStockWrite), productHandler.AdjustStock)
	products.Get("/:id/stock-history", productHandler.StockHistory)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/movements", orderHandler.Movements)
	orders.Post("/:id/images", orderHandler.UploadImages)
	orders.Get("/:id/receipt.pdf", orderHandler.Receipt)

	// Appointments
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.SchedulingUC)
	appointments.Get("/calendar", appointmentHandler.Calendar)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Reminders y plantillas
	reminders := protected.Group("/reminders")
	reminderHandler := NewReminderHandler(deps.ReminderUC)
	reminders.Get("/today", reminderHandler.Today)
	reminders.Get("/week", reminderHandler.Week)
	reminders.Post("/templates", reminderHandler.CreateTemplate)
	reminders.Get("/templates", reminderHandler.ListTemplates)
	reminders.Put("/templates/:id", reminderHandler.UpdateTemplate)
	reminders.Delete("/templates/:id", reminderHandler.DeleteTemplate)
	reminders.Post("/from-order/:orderId", reminderHandler.CreateFromOrder)
	reminders.Post("/", reminderHandler.Create)
	reminders.Get("/", reminderHandler.List)
	reminders.Put("/:id", reminderHandler.Update)
	reminders.Patch("/:id/complete", reminderHandler.Complete)
	reminders.Patch("/:id/skip", reminderHandler.Skip)
	reminders.Delete("/:id", reminderHandler.Delete)

	// Reports (solo admin)
	reports := protected.Group("/reports", RequireAction(authz.ActionReportView))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/revenue", reportHandler.Revenue)
	reports.Get("/top-selling", reportHandler.TopSelling)
	reports.Get("/customers", reportHandler.Customers)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory.xlsx", reportHandler.InventoryExcel)
	reports.Get("/dashboard", reportHandler.Dashboard)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireAction(authz.ActionSettingsWrite), settingsHandler.Update)
	settings.Post("/reset", RequireAction(authz.ActionSettingsWrite), settingsHandler.Reset)
}
