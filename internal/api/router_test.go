package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBillService/internal/api/handlers/form"
	getBarcodeHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/get_barcode"
	getInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/get_invoice"
	printInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/print_invoice"
	regenerateBillNumberHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/regenerate_bill_number"
	updateInvoiceHandler "github.com/m04kA/SMC-HotelBillService/internal/api/handlers/update_invoice"
	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/render"
	invoiceRepo "github.com/m04kA/SMC-HotelBillService/internal/infra/storage/invoice"
	"github.com/m04kA/SMC-HotelBillService/internal/service/barcodes"
	"github.com/m04kA/SMC-HotelBillService/internal/service/billnumber"
	editInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
	getInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/get_invoice"
	printInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/print_invoice"
	regenerateBillNumberUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/regenerate_bill_number"
	"github.com/m04kA/SMC-HotelBillService/pkg/logger"
	"github.com/m04kA/SMC-HotelBillService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBillService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testServer struct {
	router    http.Handler
	repo      *invoiceRepo.Repository
	accessLog *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := nopLogger{}
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("hotel_bill_service_test", reg)

	svc := barcodes.NewService(barcode.NewEncoder(2, 40), m, log)
	inv := domain.Invoice{
		HotelName:               "Grand Royal Hotel",
		HotelAddress:            "123 Luxury Avenue, New Delhi, India",
		PhoneNumber:             "+91 98765 43210",
		CustomerName:            "John Doe",
		CustomerAddress:         "456 Guest Street, Mumbai, India",
		BillNumber:              "INV-123456",
		CheckInDate:             "2024-01-01",
		CheckInTime:             "14:00",
		CheckOutDate:            "2024-01-03",
		CheckOutTime:            "12:00",
		RoomNumber:              "301",
		RoomType:                "Deluxe Suite",
		RoomPrice:               types.NumericString("5000"),
		NumberOfPeople:          types.NumericString("2"),
		GSTPercentage:           types.NumericString("18"),
		ServiceChargePercentage: types.NumericString("10"),
	}
	repo := invoiceRepo.NewRepository(inv, svc.Encode(inv.BillNumber))

	htmlRenderer := render.NewHTMLRenderer(true)
	registry := render.NewRegistry(htmlRenderer, render.NewPDFRenderer())

	getInvoice := getInvoiceUC.NewUseCase(repo)
	editInvoice := editInvoiceUC.NewUseCase(repo, svc, log)
	regenerate := regenerateBillNumberUC.NewUseCase(repo, billnumber.NewGenerator(), svc, log)
	printInvoice := printInvoiceUC.NewUseCase(repo, registry, svc, m, log)

	accessLog := &bytes.Buffer{}
	requestLog, err := logger.NewWithWriter(accessLog, "info")
	require.NoError(t, err)

	router := NewRouter(Handlers{
		Form:                 form.NewHandler(getInvoice, editInvoice, regenerate, render.NewHTMLRenderer(false), log),
		GetInvoice:           getInvoiceHandler.NewHandler(getInvoice, log),
		UpdateInvoice:        updateInvoiceHandler.NewHandler(editInvoice, log),
		RegenerateBillNumber: regenerateBillNumberHandler.NewHandler(regenerate, log),
		GetBarcode:           getBarcodeHandler.NewHandler(getInvoice, log),
		PrintInvoice:         printInvoiceHandler.NewHandler(printInvoice, log),
	}, MetricsOptions{
		Collector: m,
		Path:      "/metrics",
		Handler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, requestLog)

	return &testServer{router: router, repo: repo, accessLog: accessLog}
}

func (s *testServer) do(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeInvoice(t *testing.T, rec *httptest.ResponseRecorder) handlers.InvoiceResponse {
	t.Helper()
	var resp handlers.InvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetInvoice(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/invoice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	requestID := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)
	assert.Contains(t, s.accessLog.String(), "request_id="+requestID)
	assert.Contains(t, s.accessLog.String(), "GET /api/v1/invoice - 200")

	resp := decodeInvoice(t, rec)
	assert.Equal(t, "Grand Royal Hotel", resp.Fields["hotelName"])
	assert.Equal(t, "5000", resp.Fields["roomPrice"])
	assert.Len(t, resp.Fields, len(domain.Fields))
	assert.Equal(t, 2, resp.Bill.Nights)
	assert.Equal(t, "10000.00", resp.Bill.RoomSubtotal)
	assert.Equal(t, "1000.00", resp.Bill.ServiceCharge)
	assert.Equal(t, "1800.00", resp.Bill.GSTAmount)
	assert.Equal(t, "12800.00", resp.Bill.Total)
	assert.True(t, resp.BarcodeAvailable)
	assert.Equal(t, domain.ViewTitle, resp.Title)
}

func TestUpdateInvoice(t *testing.T) {
	s := newTestServer(t)

	t.Run("numbers and strings", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/api/v1/invoice", `{"roomPrice": 6000, "checkOutDate": "2024-01-04"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decodeInvoice(t, rec)
		assert.Equal(t, "6000", resp.Fields["roomPrice"])
		assert.Equal(t, 3, resp.Bill.Nights)
		assert.Equal(t, "23040.00", resp.Bill.Total)
	})

	t.Run("null clears numeric field", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/api/v1/invoice", `{"roomPrice": null}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeInvoice(t, rec)
		assert.Equal(t, "", resp.Fields["roomPrice"])
		assert.Equal(t, "0.00", resp.Bill.Total)
	})

	t.Run("bill number change refreshes barcode", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/api/v1/invoice", `{"billNumber": "INV-№1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeInvoice(t, rec).BarcodeAvailable)

		rec = s.do(t, http.MethodGet, "/api/v1/invoice/barcode.png", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	errorCases := []struct {
		name string
		body string
	}{
		{"unknown field", `{"discount": "5"}`},
		{"empty object", `{}`},
		{"not an object", `[1, 2]`},
		{"boolean value", `{"roomPrice": true}`},
		{"malformed", `{"roomPrice": `},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPatch, "/api/v1/invoice", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegenerateBillNumber(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/invoice/bill-number", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		BillNumber       string `json:"billNumber"`
		BarcodeAvailable bool   `json:"barcodeAvailable"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, regexp.MustCompile(`^INV-[1-9]\d{5}$`), resp.BillNumber)
	assert.True(t, resp.BarcodeAvailable)

	state := s.repo.Get(t.Context())
	assert.Equal(t, resp.BillNumber, state.Invoice.BillNumber)
	assert.Equal(t, resp.BillNumber, state.Symbol.Value)
}

func TestGetBarcode(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/invoice/barcode.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestPrintInvoice(t *testing.T) {
	s := newTestServer(t)
	const title = "Grand Royal Hotel-2024-01-01-2024-01-03-2-12800-hotel-bill"

	t.Run("html", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/invoice/print?format=html", "")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename="`+title+`.html"`, rec.Header().Get("Content-Disposition"))
		assert.Contains(t, rec.Body.String(), "<title>"+title+"</title>")
		assert.Contains(t, rec.Body.String(), "window.print()")

		// Заголовок окна восстановлен
		assert.Equal(t, domain.ViewTitle, s.repo.Title(t.Context()))
	})

	t.Run("pdf", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/invoice/print?format=pdf", "")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	})

	t.Run("default format", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/invoice/print", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/invoice/print?format=docx", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPrintInvoice_NonLatinText(t *testing.T) {
	s := newTestServer(t)

	t.Run("cyrillic is printed as pdf", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/api/v1/invoice", `{"hotelName": "Гранд Отель"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(t, http.MethodGet, "/api/v1/invoice/print?format=pdf", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	})

	t.Run("devanagari is rejected by pdf but kept by html", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/api/v1/invoice", `{"hotelName": "होटल ताज"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(t, http.MethodGet, "/api/v1/invoice/print?format=pdf", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, domain.ViewTitle, s.repo.Title(t.Context()))

		rec = s.do(t, http.MethodGet, "/api/v1/invoice/print?format=html", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "होटल ताज")
	})
}

func TestFormPage(t *testing.T) {
	s := newTestServer(t)

	t.Run("show", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "<title>Hotel Bill Generator</title>")
		assert.Contains(t, body, `name="roomPrice" type="number"`)
		assert.Contains(t, body, `name="checkInDate" type="date"`)
		assert.Contains(t, body, `name="hotelName" type="text"`)
		assert.Contains(t, body, `value="Grand Royal Hotel"`)
		assert.Contains(t, body, "₹12800.00")
		assert.NotContains(t, body, "window.print()")
	})

	t.Run("submit applies fields and redirects", func(t *testing.T) {
		formData := url.Values{
			"hotelName":    {"Sea View Resort"},
			"checkOutDate": {"2024-01-06"},
			"ignored":      {"x"},
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(formData.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		inv := s.repo.Get(t.Context()).Invoice
		assert.Equal(t, "Sea View Resort", inv.HotelName)
		assert.Equal(t, "2024-01-06", inv.CheckOutDate)
		assert.Equal(t, "John Doe", inv.CustomerName)
	})

	t.Run("regenerate action", func(t *testing.T) {
		formData := url.Values{"action": {"regenerate"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(formData.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		state := s.repo.Get(t.Context())
		assert.Regexp(t, regexp.MustCompile(`^INV-\d{6}$`), state.Invoice.BillNumber)
		require.NotNil(t, state.Symbol)
		assert.Equal(t, state.Invoice.BillNumber, state.Symbol.Value)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodGet, "/api/v1/invoice", "")
	rec := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/invoice",service="hotel_bill_service_test",status="200"} 1`)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/api/v1/invoice", "/api/v1/invoice/print", "/"} {
		t.Run(target, func(t *testing.T) {
			rec := s.do(t, http.MethodDelete, target, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "method not allowed", resp.Error)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/rooms", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
