package config

import "errors"

var (
	// ErrDecode возвращается при ошибке разбора TOML файла
	ErrDecode = errors.New("config: failed to decode file")

	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
