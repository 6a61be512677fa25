package print_invoice

import "errors"

// SurfaceBlockedMessage сообщение пользователю, когда поверхность вывода недоступна
const SurfaceBlockedMessage = "Please allow the print window or output directory to print the bill"

var (
	// ErrSurfaceBlocked возвращается, когда не удалось открыть поверхность вывода
	ErrSurfaceBlocked = errors.New("print_invoice: output surface blocked")

	// ErrUnknownFormat возвращается для неподдерживаемого формата документа
	ErrUnknownFormat = errors.New("print_invoice: unknown document format")

	// ErrUnsupportedText возвращается, когда выбранный формат не может воспроизвести поля счёта как есть
	ErrUnsupportedText = errors.New("print_invoice: format cannot reproduce invoice text")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("print_invoice: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("print_invoice: internal error")
)
