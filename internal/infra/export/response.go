package export

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

// ResponseExporter отдаёт документ в HTTP-ответ.
// Браузер открывает его inline и предлагает имя файла из заголовка документа.
type ResponseExporter struct {
	w http.ResponseWriter
}

// NewResponseExporter создает экспортёр поверх ответа текущего запроса
func NewResponseExporter(w http.ResponseWriter) *ResponseExporter {
	return &ResponseExporter{w: w}
}

// Export пишет снимок в ответ и возвращает предложенное имя файла
func (e *ResponseExporter) Export(_ context.Context, snap Snapshot) (string, error) {
	if e.w == nil {
		return "", fmt.Errorf("%w: no response writer", ErrSurfaceUnavailable)
	}

	name := FileName(snap.Title, snap.Extension)

	h := e.w.Header()
	h.Set("Content-Type", snap.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": name}))
	h.Set("Content-Length", strconv.Itoa(len(snap.Body)))
	e.w.WriteHeader(http.StatusOK)

	if _, err := e.w.Write(snap.Body); err != nil {
		return "", fmt.Errorf("%w: response: %v", ErrWrite, err)
	}
	return name, nil
}
