package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers/form"
	getBarcodeHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/get_barcode"
	getInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/get_invoice"
	printInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/print_invoice"
	regenerateBillNumberHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/regenerate_bill_number"
	updateInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/update_invoice"
	"github.com/m04kA/SMC-HotelBillService/internal/api/middleware"
)

// Handlers обработчики HTTP маршрутов
type Handlers struct {
	Form                 *form.Handler
	GetInvoice           *getInvoiceHandler.Handler
	UpdateInvoice        *updateInvoiceHandler.Handler
	RegenerateBillNumber *regenerateBillNumberHandler.Handler
	GetBarcode           *getBarcodeHandler.Handler
	PrintInvoice         *printInvoiceHandler.Handler
}

// MetricsOptions настройки метрик роутера.
// Если Collector == nil, метрики не подключаются.
type MetricsOptions struct {
	Collector middleware.HTTPMetrics
	Path      string
	Handler   http.Handler
}

const msgMethodNotAllowed = "method not allowed"

// NewRouter настраивает маршруты сервиса. log может быть nil: тогда запросы не логируются.
func NewRouter(h Handlers, m MetricsOptions, log middleware.RequestLogger) *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	r.Use(middleware.RequestID)
	if log != nil {
		r.Use(middleware.AccessLog(log))
	}

	if m.Collector != nil {
		r.Use(middleware.MetricsMiddleware(m.Collector))
	}
	if m.Handler != nil && m.Path != "" {
		r.Handle(m.Path, m.Handler).Methods(http.MethodGet)
	}

	// Форма и предпросмотр
	r.HandleFunc("/", h.Form.Show).Methods(http.MethodGet)
	r.HandleFunc("/", h.Form.Submit).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/invoice", h.GetInvoice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/invoice", h.UpdateInvoice.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/invoice/bill-number", h.RegenerateBillNumber.Handle).Methods(http.MethodPost)
	api.HandleFunc("/invoice/barcode.png", h.GetBarcode.Handle).Methods(http.MethodGet)
	api.HandleFunc("/invoice/print", h.PrintInvoice.Handle).Methods(http.MethodGet)

	return r
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
