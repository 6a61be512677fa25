package types

import (
	"math"
	"strconv"
	"strings"
)

// NumericString значение числового поля формы в том виде, в каком его ввёл пользователь.
// Пустая строка остаётся пустой при отображении, а в вычислениях превращается в ноль.
type NumericString string

// String возвращает исходный ввод без изменений
func (n NumericString) String() string {
	return string(n)
}

// IsBlank возвращает true, если поле пустое (или содержит только пробелы)
func (n NumericString) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Float приводит ввод к числу.
// Пустой ввод, нечисловой текст, NaN и бесконечности дают 0.
// Целые с префиксом 0x, 0o и 0b читаются в своей системе счисления (без знака, как в формах браузера).
func (n NumericString) Float() float64 {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0
	}
	if base := prefixBase(s); base != 0 {
		v, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return 0
		}
		return float64(v)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

func prefixBase(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}
