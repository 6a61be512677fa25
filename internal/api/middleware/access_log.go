package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBillService/pkg/logger"
)

// RequestLogger логгер, к которому можно привязать атрибуты запроса
type RequestLogger interface {
	With(args ...any) *logger.Logger
}

// AccessLog пишет одну строку на запрос с его request_id.
// Должен стоять после RequestID.
func AccessLog(log RequestLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			id, _ := GetRequestID(r.Context())
			l := log.With("request_id", id)
			duration := time.Since(start)

			switch {
			case rec.status >= http.StatusInternalServerError:
				l.Error("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				l.Warn("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			default:
				l.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}
