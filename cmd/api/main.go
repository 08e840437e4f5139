package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/beautybook-api/internal/application/auth"
	"github.com/tu-usuario/beautybook-api/internal/application/inventory"
	"github.com/tu-usuario/beautybook-api/internal/application/order"
	"github.com/tu-usuario/beautybook-api/internal/application/reminder"
	"github.com/tu-usuario/beautybook-api/internal/application/report"
	"github.com/tu-usuario/beautybook-api/internal/application/scheduling"
	"github.com/tu-usuario/beautybook-api/internal/application/usecase"
	infraexcel "github.com/tu-usuario/beautybook-api/internal/infrastructure/excel"
	"github.com/tu-usuario/beautybook-api/internal/infrastructure/images"
	infrapdf "github.com/tu-usuario/beautybook-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/beautybook-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/beautybook-api/internal/interfaces/http"
	"github.com/tu-usuario/beautybook-api/pkg/config"
	"github.com/tu-usuario/beautybook-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	apptRepo := postgres.NewAppointmentRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	templateRepo := postgres.NewReminderTemplateRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo, apptRepo, orderRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	inventoryManager := inventory.NewManager(txRunner, movementRepo)

	uploader := images.NewUploader(cfg.Images.UploadURL, cfg.Images.APIKey)
	receipts := infrapdf.NewReceiptGenerator()
	orderUC := order.NewUseCase(
		txRunner, orderRepo, customerRepo, productRepo, serviceRepo,
		apptRepo, movementRepo, settingsRepo, uploader, receipts,
	)
	schedulingUC := scheduling.NewUseCase(
		txRunner, apptRepo, customerRepo, serviceRepo,
		orderUC, cfg.Orders.RestoreStockOnAppointmentCancel,
	)
	reminderUC := reminder.NewUseCase(reminderRepo, templateRepo, customerRepo)
	reportUC := report.NewUseCase(reportRepo, infraexcel.NewInventoryExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BeautyBook API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CustomerUC:   customerUC,
		ServiceUC:    serviceUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		SettingsUC:   settingsUC,
		Inventory:    inventoryManager,
		OrderUC:      orderUC,
		SchedulingUC: schedulingUC,
		ReminderUC:   reminderUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
