package handlers

import (
	"github.com/m04kA/SMC-HotelBillService/internal/domain"
)

// InvoiceResponse HTTP модель счёта с рассчитанными суммами
type InvoiceResponse struct {
	Fields           map[string]string `json:"fields"`
	Bill             BillResponse      `json:"bill"`
	BarcodeAvailable bool              `json:"barcodeAvailable"`
	Title            string            `json:"title,omitempty"`
}

// BillResponse рассчитанные суммы, строки с двумя знаками после запятой
type BillResponse struct {
	Nights        int    `json:"nights"`
	RoomPrice     string `json:"roomPrice"`
	RoomSubtotal  string `json:"roomSubtotal"`
	ServiceCharge string `json:"serviceCharge"`
	GSTAmount     string `json:"gstAmount"`
	Total         string `json:"total"`
}

// NewInvoiceResponse конвертирует счёт в HTTP ответ
func NewInvoiceResponse(inv domain.Invoice, bill domain.Bill, barcodeAvailable bool, title string) *InvoiceResponse {
	fields := make(map[string]string, len(domain.Fields))
	for _, f := range domain.Fields {
		// Все поля из domain.Fields известны, ошибка невозможна
		v, _ := inv.Value(f)
		fields[string(f)] = v
	}

	return &InvoiceResponse{
		Fields: fields,
		Bill: BillResponse{
			Nights:        bill.Nights,
			RoomPrice:     bill.RoomPrice.StringFixed(domain.MoneyDecimals),
			RoomSubtotal:  bill.RoomSubtotal.StringFixed(domain.MoneyDecimals),
			ServiceCharge: bill.ServiceCharge.StringFixed(domain.MoneyDecimals),
			GSTAmount:     bill.GSTAmount.StringFixed(domain.MoneyDecimals),
			Total:         bill.Total.StringFixed(domain.MoneyDecimals),
		},
		BarcodeAvailable: barcodeAvailable,
		Title:            title,
	}
}
