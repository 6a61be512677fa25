package barcode

import "errors"

var (
	// ErrEncode возвращается, когда значение невозможно закодировать в Code 128
	ErrEncode = errors.New("barcode: failed to encode value")
)
