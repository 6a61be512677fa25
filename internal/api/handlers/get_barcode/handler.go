package get_barcode

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
)

const (
	msgBarcodeUnavailable = "barcode is not available for the current bill number"
)

type Handler struct {
	useCase GetInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase GetInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/invoice/barcode.png
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context())

	if result.Barcode == nil {
		h.logger.Warn("GET /invoice/barcode.png - Barcode unavailable: bill=%q", result.Invoice.BillNumber)
		handlers.RespondNotFound(w, msgBarcodeUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Barcode.PNG)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Barcode.PNG); err != nil {
		h.logger.Error("GET /invoice/barcode.png - Failed to write response: %v", err)
	}
}
