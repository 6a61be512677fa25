package regenerate_bill_number

import (
	regenerateBillNumber "github.com/m04kA/SMC-HotelBillService/internal/usecase/regenerate_bill_number"
)

// BillNumberResponse HTTP response model
type BillNumberResponse struct {
	BillNumber       string `json:"billNumber"`
	BarcodeAvailable bool   `json:"barcodeAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *regenerateBillNumber.Response) *BillNumberResponse {
	return &BillNumberResponse{
		BillNumber:       resp.BillNumber,
		BarcodeAvailable: resp.Barcode != nil,
	}
}
