package print_invoice

import (
	"context"

	printInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/print_invoice"
)

type PrintInvoiceUseCase interface {
	Execute(ctx context.Context, req *printInvoice.Request) (*printInvoice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
