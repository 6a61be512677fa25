package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Default rendering parameters
const (
	DefaultModuleWidth = 2  // px на один модуль штрихкода
	DefaultHeight      = 40 // высота штрихов, px
)

// Symbol штрихкод Code 128 для номера счёта
type Symbol struct {
	Value  string // человекочитаемое значение, выводится под штрихами
	PNG    []byte
	Width  int
	Height int
}

// Encoder кодирует номер счёта в Code 128
type Encoder struct {
	moduleWidth int
	height      int
}

// NewEncoder создает энкодер. Неположительные параметры заменяются значениями по умолчанию.
func NewEncoder(moduleWidth, height int) *Encoder {
	if moduleWidth <= 0 {
		moduleWidth = DefaultModuleWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Encoder{
		moduleWidth: moduleWidth,
		height:      height,
	}
}

// Encode строит символ для value.
// Возвращает ErrEncode, если значение нельзя закодировать (пустое, слишком длинное, не-ASCII символы).
func (e *Encoder) Encode(value string) (*Symbol, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrEncode, value, err)
	}

	width := code.Bounds().Dx() * e.moduleWidth
	scaled, err := bc.Scale(code, width, e.height)
	if err != nil {
		return nil, fmt.Errorf("%w: scale %q: %v", ErrEncode, value, err)
	}

	// Символ 16-битный, а PDF-движок принимает только 8-битный PNG
	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("%w: png %q: %v", ErrEncode, value, err)
	}

	return &Symbol{
		Value:  value,
		PNG:    buf.Bytes(),
		Width:  width,
		Height: e.height,
	}, nil
}
