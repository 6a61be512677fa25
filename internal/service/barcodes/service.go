package barcodes

import "github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"

// Service строит штрихкод счёта.
// Ошибка кодирования не прерывает операцию: счёт показывается без штрихкода.
type Service struct {
	encoder Encoder
	metrics Metrics
	logger  Logger
}

// NewService создает сервис штрихкодов. metrics может быть nil.
func NewService(encoder Encoder, metrics Metrics, logger Logger) *Service {
	return &Service{
		encoder: encoder,
		metrics: metrics,
		logger:  logger,
	}
}

// Encode возвращает штрихкод для номера счёта или nil, если его не удалось построить
func (s *Service) Encode(billNumber string) *barcode.Symbol {
	symbol, err := s.encoder.Encode(billNumber)
	if err != nil {
		s.logger.Warn("Barcode: failed to encode bill number %q: %v", billNumber, err)
		if s.metrics != nil {
			s.metrics.BarcodeFailed()
		}
		return nil
	}
	return symbol
}
