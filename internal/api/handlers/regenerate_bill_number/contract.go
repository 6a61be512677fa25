package regenerate_bill_number

import (
	"context"

	regenerateBillNumber "github.com/m04kA/SMC-HotelBillService/internal/usecase/regenerate_bill_number"
)

type RegenerateBillNumberUseCase interface {
	Execute(ctx context.Context) (*regenerateBillNumber.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
