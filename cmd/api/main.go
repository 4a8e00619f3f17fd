package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/billmate-pos/internal/application/alerts"
	"github.com/jhoicas/billmate-pos/internal/application/analytics"
	"github.com/jhoicas/billmate-pos/internal/application/billing"
	"github.com/jhoicas/billmate-pos/internal/application/usecase"
	"github.com/jhoicas/billmate-pos/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/billmate-pos/internal/interfaces/http"
	"github.com/jhoicas/billmate-pos/pkg/config"
	"github.com/jhoicas/billmate-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	store, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer store.Close()

	db := store.DB()
	productRepo := sqlite.NewProductRepository(db)
	saleRepo := sqlite.NewSaleRepository(db)
	expenseRepo := sqlite.NewExpenseRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)
	dismissedRepo := sqlite.NewDismissedAlertRepository(db)
	txRunner := sqlite.NewTxRunner(store)

	productUC := usecase.NewProductUseCase(productRepo, settingsRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	saleUC := billing.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, saleRepo)
	dashboardUC := analytics.NewDashboardUseCase(saleUC, productUC)

	engine := alerts.NewEngine(productRepo, saleRepo, expenseRepo, customerRepo, settingsRepo, log)
	poller := alerts.NewPoller(engine, dismissedRepo, cfg.Alerts.PollInterval(), log)
	poller.Start(context.Background())
	defer poller.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		ExpenseUC:     expenseUC,
		SettingsUC:    settingsUC,
		SaleUC:        saleUC,
		CustomerUC:    customerUC,
		DashboardUC:   dashboardUC,
		AlertEngine:   engine,
		AlertPoller:   poller,
		DismissedRepo: dismissedRepo,
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
