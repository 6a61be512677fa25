package print_invoice

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBillService/internal/infra/render"
)

// validateRequest проверяет запрос и разбирает формат документа
func validateRequest(req *Request) (render.Format, error) {
	if req == nil || req.Exporter == nil {
		return "", fmt.Errorf("%w: exporter is required", ErrInvalidInput)
	}

	if req.Format == "" {
		return render.FormatHTML, nil
	}

	format, err := render.ParseFormat(req.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	return format, nil
}
