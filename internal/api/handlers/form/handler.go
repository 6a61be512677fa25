package form

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	editInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
)

const (
	msgInvalidForm = "invalid form data"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type Handler struct {
	getInvoice  GetInvoiceUseCase
	editInvoice EditInvoiceUseCase
	regenerate  RegenerateBillNumberUseCase
	preview     PreviewRenderer
	logger      Logger
}

func NewHandler(
	getInvoice GetInvoiceUseCase,
	editInvoice EditInvoiceUseCase,
	regenerate RegenerateBillNumberUseCase,
	preview PreviewRenderer,
	logger Logger,
) *Handler {
	return &Handler{
		getInvoice:  getInvoice,
		editInvoice: editInvoice,
		regenerate:  regenerate,
		preview:     preview,
		logger:      logger,
	}
}

// Show GET /
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	result := h.getInvoice.Execute(r.Context())

	preview, err := h.preview.RenderFragment(result.Document)
	if err != nil {
		h.logger.Error("GET / - Failed to render preview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Рендерим в буфер, чтобы при ошибке шаблона не отдать половину страницы
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageView(result.Title, result.Invoice, preview)); err != nil {
		h.logger.Error("GET / - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Submit POST /
// Применяет отправленные поля, по кнопке "New Bill Number" выдаёт новый номер,
// затем перенаправляет на GET /.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST / - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	// 1. Собираем правки только для известных полей, присутствующих в форме
	edits := make([]editInvoice.Edit, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		if values, ok := r.PostForm[string(f)]; ok && len(values) > 0 {
			edits = append(edits, editInvoice.Edit{Field: string(f), Value: values[0]})
		}
	}

	if len(edits) > 0 {
		if _, err := h.editInvoice.Execute(r.Context(), &editInvoice.Request{Edits: edits}); err != nil {
			h.logger.Error("POST / - Failed to apply form: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	// 2. Новый номер счёта
	if r.PostForm.Get("action") == actionRegenerate {
		if _, err := h.regenerate.Execute(r.Context()); err != nil {
			h.logger.Error("POST / - Failed to regenerate bill number: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST / - Form applied: %d field(s), action=%q", len(edits), r.PostForm.Get("action"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
