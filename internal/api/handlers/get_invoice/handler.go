package get_invoice

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
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

// Handle GET /api/v1/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context())

	response := handlers.NewInvoiceResponse(result.Invoice, result.Bill, result.Barcode != nil, result.Title)

	h.logger.Info("GET /invoice - Invoice retrieved: bill=%s, total=%s", result.Invoice.BillNumber, response.Bill.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
