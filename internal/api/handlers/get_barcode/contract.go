package get_barcode

import (
	"context"

	getInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/get_invoice"
)

type GetInvoiceUseCase interface {
	Execute(ctx context.Context) *getInvoice.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
