package get_invoice

import (
	"context"

	"github.com/m04kA/SMC-HotelBillService/internal/service/billing"
	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

// UseCase use case для получения текущего счёта
type UseCase struct {
	invoiceRepo InvoiceRepository
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(invoiceRepo InvoiceRepository) *UseCase {
	return &UseCase{invoiceRepo: invoiceRepo}
}

// Execute возвращает счёт, пересчитанные суммы и документ для предпросмотра.
// Производные значения каждый раз считаются заново.
func (uc *UseCase) Execute(ctx context.Context) *Response {
	state := uc.invoiceRepo.Get(ctx)
	bill := billing.Calculate(state.Invoice)

	return &Response{
		Invoice:  state.Invoice,
		Bill:     bill,
		Barcode:  state.Symbol,
		Document: document.Build(state.Invoice, bill, state.Symbol),
		Title:    uc.invoiceRepo.Title(ctx),
	}
}
