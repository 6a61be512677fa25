package print_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/export"
	printInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/print_invoice"
)

const (
	msgUnknownFormat   = "unknown document format, expected html or pdf"
	msgUnsupportedText = "invoice contains characters this format cannot print, use format=html"
)

type Handler struct {
	useCase PrintInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase PrintInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/invoice/print?format=html|pdf
// Документ пишется прямо в ответ, поэтому при успехе JSON не отправляется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	result, err := h.useCase.Execute(r.Context(), &printInvoice.Request{
		Format:   format,
		Exporter: export.NewResponseExporter(w),
	})
	if err != nil {
		switch {
		case errors.Is(err, printInvoice.ErrUnknownFormat):
			h.logger.Warn("GET /invoice/print - Unknown format: %q", format)
			handlers.RespondBadRequest(w, msgUnknownFormat)

		case errors.Is(err, printInvoice.ErrUnsupportedText):
			h.logger.Warn("GET /invoice/print - Unsupported text for %q: %v", format, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnsupportedText)

		case errors.Is(err, printInvoice.ErrSurfaceBlocked):
			h.logger.Warn("GET /invoice/print - Output surface blocked: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, printInvoice.SurfaceBlockedMessage)

		default:
			h.logger.Error("GET /invoice/print - Failed to print invoice: format=%q, error=%v", format, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invoice/print - Invoice sent: %s (%s, %d bytes)", result.Location, result.Format, result.Size)
}
