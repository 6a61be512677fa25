package edit_invoice

import "errors"

var (
	// ErrUnknownField возвращается, когда поле счёта не существует
	ErrUnknownField = errors.New("edit_invoice: unknown field")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_invoice: invalid input data")
)
