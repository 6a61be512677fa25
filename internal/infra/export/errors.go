package export

import "errors"

var (
	// ErrSurfaceUnavailable возвращается, когда не удалось открыть поверхность вывода
	// (каталог недоступен, файл не создаётся, нет получателя ответа)
	ErrSurfaceUnavailable = errors.New("export: output surface unavailable")

	// ErrWrite возвращается при ошибке записи документа в открытую поверхность
	ErrWrite = errors.New("export: failed to write document")
)
