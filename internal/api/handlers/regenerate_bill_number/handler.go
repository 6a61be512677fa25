package regenerate_bill_number

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
)

type Handler struct {
	useCase RegenerateBillNumberUseCase
	logger  Logger
}

func NewHandler(useCase RegenerateBillNumberUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/invoice/bill-number
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /invoice/bill-number - Failed to regenerate bill number: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /invoice/bill-number - New bill number: %s", result.BillNumber)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
