package domain

import "errors"

var (
	// ErrUnknownField возвращается при попытке изменить несуществующее поле счёта
	ErrUnknownField = errors.New("domain: unknown invoice field")
)
