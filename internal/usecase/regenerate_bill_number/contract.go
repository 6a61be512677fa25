package regenerate_bill_number

import (
	"context"

	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
)

// InvoiceRepository интерфейс хранилища текущего счёта
type InvoiceRepository interface {
	Update(ctx context.Context, fn func(invoiceRepo.State) (invoiceRepo.State, error)) (invoiceRepo.State, error)
}

// BillNumberGenerator генератор номеров счетов
type BillNumberGenerator interface {
	Next() string
}

// BarcodeService интерфейс построения штрихкода
type BarcodeService interface {
	Encode(billNumber string) *barcode.Symbol
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
