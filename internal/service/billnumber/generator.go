package billnumber

import (
	"fmt"
	"math/rand/v2"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
)

// RandomSource источник случайных чисел (для тестирования)
type RandomSource interface {
	// IntN возвращает число в [0, n)
	IntN(n int) int
}

// defaultSource использует глобальный генератор math/rand/v2
type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	return rand.IntN(n)
}

// Generator генерирует номера счетов вида INV-NNNNNN.
// Уникальность номеров не гарантируется.
type Generator struct {
	source RandomSource
}

// NewGenerator создает генератор на глобальном источнике случайных чисел
func NewGenerator() *Generator {
	return &Generator{source: defaultSource{}}
}

// NewGeneratorWithSource создает генератор с заданным источником
func NewGeneratorWithSource(source RandomSource) *Generator {
	return &Generator{source: source}
}

// Next возвращает новый номер счёта, число равномерно распределено в [BillNumberMin, BillNumberMax]
func (g *Generator) Next() string {
	span := domain.BillNumberMax - domain.BillNumberMin + 1
	n := domain.BillNumberMin + g.source.IntN(span)
	return fmt.Sprintf("%s-%06d", domain.BillNumberPrefix, n)
}
