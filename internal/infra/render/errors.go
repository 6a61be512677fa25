package render

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat возвращается для неподдерживаемого формата документа
	ErrUnknownFormat = errors.New("render: unknown document format")

	// ErrRender возвращается при ошибке рендеринга
	ErrRender = errors.New("render: failed to render document")

	// ErrUnsupportedText возвращается, когда формат не может воспроизвести текст поля без искажений
	ErrUnsupportedText = fmt.Errorf("%w: unsupported text", ErrRender)
)
