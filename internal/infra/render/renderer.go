package render

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

// Format формат выходного документа
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// ParseFormat разбирает формат из строки (регистр не важен)
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension возвращает расширение файла без точки
func (f Format) Extension() string {
	return string(f)
}

// Renderer движок рендеринга документа
type Renderer interface {
	Render(doc *document.Document) ([]byte, error)
	Format() Format
	ContentType() string
}

// Registry набор движков по форматам
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry создает реестр из переданных движков
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[Format]Renderer, len(renderers))}
	for _, rr := range renderers {
		r.renderers[rr.Format()] = rr
	}
	return r
}

// Get возвращает движок для формата
func (r *Registry) Get(format Format) (Renderer, error) {
	rr, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return rr, nil
}
