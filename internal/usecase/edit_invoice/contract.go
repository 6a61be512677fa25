package edit_invoice

import (
	"context"

	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
)

// InvoiceRepository интерфейс хранилища текущего счёта
type InvoiceRepository interface {
	Update(ctx context.Context, fn func(invoiceRepo.State) (invoiceRepo.State, error)) (invoiceRepo.State, error)
}

// BarcodeService интерфейс построения штрихкода.
// Возвращает nil, если штрихкод построить не удалось.
type BarcodeService interface {
	Encode(billNumber string) *barcode.Symbol
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
