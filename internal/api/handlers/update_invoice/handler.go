package update_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
	editInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
)

const (
	msgInvalidRequestBody = "invalid request body, expected an object of field values"
	msgNoFields           = "no fields to update"
	msgUnknownField       = "unknown invoice field"
)

type Handler struct {
	useCase EditInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase EditInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /invoice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PATCH /invoice - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, editInvoice.ErrInvalidInput):
			h.logger.Warn("PATCH /invoice - No fields to update")
			handlers.RespondBadRequest(w, msgNoFields)

		case errors.Is(err, editInvoice.ErrUnknownField):
			h.logger.Warn("PATCH /invoice - Unknown field: %v", err)
			handlers.RespondBadRequest(w, msgUnknownField)

		default:
			h.logger.Error("PATCH /invoice - Failed to update invoice: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := handlers.NewInvoiceResponse(result.Invoice, result.Bill, result.Barcode != nil, "")

	h.logger.Info("PATCH /invoice - Invoice updated: %d field(s), total=%s", len(useCaseReq.Edits), response.Bill.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
