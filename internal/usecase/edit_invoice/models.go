package edit_invoice

import (
	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
)

// Edit изменение одного поля формы
type Edit struct {
	Field string // ключ поля, например "roomPrice"
	Value string // значение как его ввёл пользователь
}

// Request модель запроса на изменение счёта.
// Правки применяются по порядку, все или ни одной.
type Request struct {
	Edits []Edit
}

// Response модель ответа с новым состоянием счёта
type Response struct {
	Invoice domain.Invoice
	Bill    domain.Bill
	Barcode *barcode.Symbol // nil, если штрихкод недоступен
}
