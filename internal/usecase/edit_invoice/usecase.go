package edit_invoice

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HotelBillService/internal/service/billing"
)

// UseCase use case для изменения полей счёта
type UseCase struct {
	invoiceRepo InvoiceRepository
	barcodes    BarcodeService
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(invoiceRepo InvoiceRepository, barcodes BarcodeService, logger Logger) *UseCase {
	return &UseCase{
		invoiceRepo: invoiceRepo,
		barcodes:    barcodes,
		logger:      logger,
	}
}

// Execute применяет правки к текущему счёту и пересчитывает суммы.
// При смене номера счёта штрихкод строится заново.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditInvoice: validation failed: %v", err)
		return nil, err
	}

	// 2. Применяем правки к копии счёта и сохраняем результат целиком
	state, err := uc.invoiceRepo.Update(ctx, func(current invoiceRepo.State) (invoiceRepo.State, error) {
		next := current.Invoice
		for _, edit := range req.Edits {
			updated, err := next.With(domain.Field(edit.Field), edit.Value)
			if err != nil {
				return current, fmt.Errorf("%w: %v", ErrUnknownField, err)
			}
			next = updated
		}

		// 2.1. Штрихкод не должен отставать от номера счёта
		symbol := current.Symbol
		if next.BillNumber != current.Invoice.BillNumber {
			symbol = uc.barcodes.Encode(next.BillNumber)
		}

		return invoiceRepo.State{Invoice: next, Symbol: symbol}, nil
	})
	if err != nil {
		uc.logger.Warn("EditInvoice: failed to apply edits: %v", err)
		return nil, err
	}

	// 3. Пересчитываем производные значения
	bill := billing.Calculate(state.Invoice)

	uc.logger.Info("EditInvoice: %d field(s) updated, bill=%s, nights=%d, total=%s",
		len(req.Edits), state.Invoice.BillNumber, bill.Nights, bill.Total.StringFixed(domain.MoneyDecimals))

	return &Response{
		Invoice: state.Invoice,
		Bill:    bill,
		Barcode: state.Symbol,
	}, nil
}
