package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-HotelBillService/internal/api"
	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers/form"
	getBarcodeHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/get_barcode"
	getInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/get_invoice"
	printInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/print_invoice"
	regenerateBillNumberHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/regenerate_bill_number"
	updateInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/update_invoice"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/render"
	"github.com/m04kA/SMC-HotelBillService/pkg/logger"
	"github.com/m04kA/SMC-HotelBillService/pkg/metrics"
)

func serve(c *cli.Context) error {
	// Загружаем конфигурацию
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-HotelBillService...")
	log.Info("Configuration loaded from %s", c.String("config"))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем use cases
	uc := buildUseCases(cfg, log, metricsCollector)
	state := uc.repo.Get(c.Context)
	log.Info("Initial bill %s for %s (barcode=%t)",
		state.Invoice.BillNumber, state.Invoice.HotelName, state.Symbol != nil)

	// Инициализируем handlers
	h := api.Handlers{
		Form: form.NewHandler(
			uc.getInvoice,
			uc.editInvoice,
			uc.regenerateBillNumber,
			render.NewHTMLRenderer(false),
			log,
		),
		GetInvoice:           getInvoiceHandler.NewHandler(uc.getInvoice, log),
		UpdateInvoice:        updateInvoiceHandler.NewHandler(uc.editInvoice, log),
		RegenerateBillNumber: regenerateBillNumberHandler.NewHandler(uc.regenerateBillNumber, log),
		GetBarcode:           getBarcodeHandler.NewHandler(uc.getInvoice, log),
		PrintInvoice:         printInvoiceHandler.NewHandler(uc.printInvoice, log),
	}

	// Настраиваем роутер
	var metricsOpts api.MetricsOptions
	if metricsCollector != nil {
		metricsOpts = api.MetricsOptions{
			Collector: metricsCollector,
			Path:      cfg.Metrics.Path,
			Handler:   promhttp.Handler(),
		}
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(h, metricsOpts, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
