package invoice

import "errors"

var (
	// ErrEmptyTitle возвращается при попытке установить пустой заголовок окна
	ErrEmptyTitle = errors.New("invoice.repository: empty view title")
)
