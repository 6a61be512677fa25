package print_invoice

import (
	"context"

	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/export"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/render"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
)

// InvoiceRepository интерфейс хранилища текущего счёта и заголовка окна
type InvoiceRepository interface {
	Get(ctx context.Context) invoiceRepo.State
	BeginPrint(ctx context.Context, title string) error
	EndPrint(ctx context.Context)
}

// Renderers реестр движков рендеринга
type Renderers interface {
	Get(format render.Format) (render.Renderer, error)
}

// Exporter поверхность вывода документа (файл, HTTP-ответ)
type Exporter interface {
	Export(ctx context.Context, snap export.Snapshot) (string, error)
}

// BarcodeService интерфейс построения штрихкода
type BarcodeService interface {
	Encode(billNumber string) *barcode.Symbol
}

// Metrics учёт выданных счетов
type Metrics interface {
	BillExported(format, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
