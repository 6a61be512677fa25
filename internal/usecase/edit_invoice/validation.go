package edit_invoice

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
)

// validateRequest проверяет, что в запросе есть правки и все поля известны
func validateRequest(req *Request) error {
	if req == nil || len(req.Edits) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	for _, edit := range req.Edits {
		if _, err := domain.ParseField(edit.Field); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, edit.Field)
		}
	}

	return nil
}
