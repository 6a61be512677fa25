package regenerate_bill_number

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
)

// UseCase use case для выдачи нового номера счёта
type UseCase struct {
	invoiceRepo InvoiceRepository
	generator   BillNumberGenerator
	barcodes    BarcodeService
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	invoiceRepo InvoiceRepository,
	generator BillNumberGenerator,
	barcodes BarcodeService,
	logger Logger,
) *UseCase {
	return &UseCase{
		invoiceRepo: invoiceRepo,
		generator:   generator,
		barcodes:    barcodes,
		logger:      logger,
	}
}

// Execute заменяет номер счёта на новый и перестраивает штрихкод.
// Остальные поля счёта не меняются.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Генерируем номер вне блокировки хранилища
	number := uc.generator.Next()

	// 2. Строим штрихкод заранее, чтобы не держать блокировку во время кодирования
	symbol := uc.barcodes.Encode(number)

	// 3. Сохраняем номер и штрихкод вместе
	state, err := uc.invoiceRepo.Update(ctx, func(current invoiceRepo.State) (invoiceRepo.State, error) {
		next, err := current.Invoice.With(domain.FieldBillNumber, number)
		if err != nil {
			return current, err
		}
		return invoiceRepo.State{Invoice: next, Symbol: symbol}, nil
	})
	if err != nil {
		uc.logger.Error("RegenerateBillNumber: failed to save bill number %s: %v", number, err)
		return nil, fmt.Errorf("%w: failed to save bill number: %v", ErrInternal, err)
	}

	uc.logger.Info("RegenerateBillNumber: new bill number %s (barcode=%t)", number, state.Symbol != nil)

	return &Response{
		BillNumber: state.Invoice.BillNumber,
		Barcode:    state.Symbol,
	}, nil
}
