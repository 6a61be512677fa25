package main

import (
	"time"

	"github.com/m04kA/SMC-HotelBillService/internal/config"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/render"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HotelBillService/internal/service/barcodes"
	"github.com/m04kA/SMC-HotelBillService/internal/service/billnumber"
	editInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
	getInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/get_invoice"
	printInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/print_invoice"
	regenerateBillNumberUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/regenerate_bill_number"
	"github.com/m04kA/SMC-HotelBillService/pkg/logger"
	"github.com/m04kA/SMC-HotelBillService/pkg/metrics"
)

// useCases собранные use cases и общее состояние
type useCases struct {
	repo                 *invoiceRepo.Repository
	getInvoice           *getInvoiceUC.UseCase
	editInvoice          *editInvoiceUC.UseCase
	regenerateBillNumber *regenerateBillNumberUC.UseCase
	printInvoice         *printInvoiceUC.UseCase
}

// buildUseCases собирает use cases поверх одного счёта.
// metricsCollector может быть nil.
func buildUseCases(cfg *config.Config, log *logger.Logger, metricsCollector *metrics.Metrics) *useCases {
	// Интерфейсы с nil-указателем внутри не равны nil, поэтому передаём nil явно
	var (
		barcodeMetrics barcodes.Metrics
		printMetrics   printInvoiceUC.Metrics
	)
	if metricsCollector != nil {
		barcodeMetrics = metricsCollector
		printMetrics = metricsCollector
	}

	generator := billnumber.NewGenerator()
	barcodeSvc := barcodes.NewService(
		barcode.NewEncoder(cfg.Barcode.ModuleWidth, cfg.Barcode.Height),
		barcodeMetrics,
		log,
	)

	// Начальный счёт: значения из конфигурации, заезд сегодня, новый номер
	initial := cfg.Invoice.NewInvoice(time.Now(), generator.Next())
	repo := invoiceRepo.NewRepository(initial, barcodeSvc.Encode(initial.BillNumber))

	renderers := render.NewRegistry(
		render.NewHTMLRenderer(true),
		render.NewPDFRenderer(),
	)

	return &useCases{
		repo:                 repo,
		getInvoice:           getInvoiceUC.NewUseCase(repo),
		editInvoice:          editInvoiceUC.NewUseCase(repo, barcodeSvc, log),
		regenerateBillNumber: regenerateBillNumberUC.NewUseCase(repo, generator, barcodeSvc, log),
		printInvoice:         printInvoiceUC.NewUseCase(repo, renderers, barcodeSvc, printMetrics, log),
	}
}
