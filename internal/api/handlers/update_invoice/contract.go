package update_invoice

import (
	"context"

	editInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
)

type EditInvoiceUseCase interface {
	Execute(ctx context.Context, req *editInvoice.Request) (*editInvoice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
