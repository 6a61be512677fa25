package regenerate_bill_number

import "github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"

// Response модель ответа с новым номером счёта
type Response struct {
	BillNumber string
	Barcode    *barcode.Symbol // nil, если штрихкод недоступен
}
