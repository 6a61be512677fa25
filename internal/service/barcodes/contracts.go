package barcodes

import "github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"

// Encoder строит штрихкод по номеру счёта
type Encoder interface {
	Encode(value string) (*barcode.Symbol, error)
}

// Metrics учёт неудачных кодирований
type Metrics interface {
	BarcodeFailed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
