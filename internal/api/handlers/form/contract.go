package form

import (
	"context"
	"html/template"

	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
	editInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
	getInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/get_invoice"
	regenerateBillNumber "github.com/m04kA/SMC-HotelBillService/internal/usecase/regenerate_bill_number"
)

type GetInvoiceUseCase interface {
	Execute(ctx context.Context) *getInvoice.Response
}

type EditInvoiceUseCase interface {
	Execute(ctx context.Context, req *editInvoice.Request) (*editInvoice.Response, error)
}

type RegenerateBillNumberUseCase interface {
	Execute(ctx context.Context) (*regenerateBillNumber.Response, error)
}

// PreviewRenderer рендерит тело счёта для встраивания в страницу
type PreviewRenderer interface {
	RenderFragment(doc *document.Document) (template.HTML, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
