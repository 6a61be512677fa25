package print_invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBillService/internal/infra/export"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/render"
	"github.com/m04kA/SMC-HotelBillService/internal/service/billing"
	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

const (
	resultOK      = "ok"
	resultBlocked = "blocked"
	resultError   = "error"
)

// UseCase use case для печати счёта
type UseCase struct {
	invoiceRepo InvoiceRepository
	renderers   Renderers
	barcodes    BarcodeService
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	invoiceRepo InvoiceRepository,
	renderers Renderers,
	barcodes BarcodeService,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		invoiceRepo: invoiceRepo,
		renderers:   renderers,
		barcodes:    barcodes,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute рендерит текущий счёт и выдаёт его через exporter.
// На время выдачи заголовок окна заменяется именем файла, затем всегда восстанавливается.
// Выдача не ждёт завершения печати.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	format, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PrintInvoice: validation failed: %v", err)
		return nil, err
	}

	renderer, err := uc.renderers.Get(format)
	if err != nil {
		uc.logger.Warn("PrintInvoice: no renderer for format %s: %v", format, err)
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}

	// 2. Штрихкод строится заново по текущему номеру счёта
	state := uc.invoiceRepo.Get(ctx)
	symbol := uc.barcodes.Encode(state.Invoice.BillNumber)

	// 3. Собираем и рендерим документ
	bill := billing.Calculate(state.Invoice)
	doc := document.Build(state.Invoice, bill, symbol)

	body, err := renderer.Render(doc)
	if err != nil {
		if errors.Is(err, render.ErrUnsupportedText) {
			uc.logger.Warn("PrintInvoice: %s cannot reproduce invoice text: %v", format, err)
			uc.countExport(string(format), resultError)
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedText, err)
		}
		uc.logger.Error("PrintInvoice: failed to render %s document: %v", format, err)
		uc.countExport(string(format), resultError)
		return nil, fmt.Errorf("%w: failed to render document: %v", ErrInternal, err)
	}

	// 4. Подменяем заголовок окна на время выдачи
	if err := uc.invoiceRepo.BeginPrint(ctx, doc.Title); err != nil {
		uc.logger.Warn("PrintInvoice: failed to set title %q: %v", doc.Title, err)
	} else {
		defer uc.invoiceRepo.EndPrint(ctx)
	}

	// 5. Выдаём документ
	location, err := req.Exporter.Export(ctx, export.Snapshot{
		Title:       doc.Title,
		Extension:   format.Extension(),
		ContentType: renderer.ContentType(),
		Body:        body,
	})
	if err != nil {
		if errors.Is(err, export.ErrSurfaceUnavailable) {
			uc.logger.Warn("PrintInvoice: output surface unavailable for %q: %v", doc.Title, err)
			uc.countExport(string(format), resultBlocked)
			return nil, fmt.Errorf("%w: %v", ErrSurfaceBlocked, err)
		}
		uc.logger.Error("PrintInvoice: failed to export %q: %v", doc.Title, err)
		uc.countExport(string(format), resultError)
		return nil, fmt.Errorf("%w: failed to export document: %v", ErrInternal, err)
	}

	uc.countExport(string(format), resultOK)
	uc.logger.Info("PrintInvoice: bill %s exported as %s to %s (%d bytes)",
		state.Invoice.BillNumber, format, location, len(body))

	return &Response{
		Title:    doc.Title,
		Format:   string(format),
		Location: location,
		Size:     len(body),
	}, nil
}

func (uc *UseCase) countExport(format, result string) {
	if uc.metrics != nil {
		uc.metrics.BillExported(format, result)
	}
}
