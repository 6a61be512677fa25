package regenerate_bill_number

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("regenerate_bill_number: internal error")
)
