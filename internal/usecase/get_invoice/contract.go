package get_invoice

import (
	"context"

	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
)

// InvoiceRepository интерфейс хранилища текущего счёта
type InvoiceRepository interface {
	Get(ctx context.Context) invoiceRepo.State
	Title(ctx context.Context) string
}
