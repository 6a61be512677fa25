package get_invoice

import (
	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

// Response текущее состояние счёта с производными значениями
type Response struct {
	Invoice  domain.Invoice
	Bill     domain.Bill
	Barcode  *barcode.Symbol    // nil, если штрихкод недоступен
	Document *document.Document // готовое представление для предпросмотра
	Title    string             // текущий заголовок окна
}
