package config

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
)

// InvoiceValue значение поля счёта из файла
type InvoiceValue struct {
	Field string
	Value string
}

// LoadInvoiceFile читает значения полей счёта из TOML файла:
//
//	hotelName = "Grand Royal Hotel"
//	checkInDate = "2024-01-01"
//	roomPrice = 5000
//
// Ключи не проверяются, поля возвращаются в порядке имён.
func LoadInvoiceFile(path string) ([]InvoiceValue, error) {
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]InvoiceValue, 0, len(keys))
	for _, k := range keys {
		var s string
		switch v := raw[k].(type) {
		case string:
			s = v
		case int64:
			s = strconv.FormatInt(v, 10)
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case time.Time:
			// Дата без кавычек: checkInDate = 2024-01-01
			s = v.Format(domain.DateFormat)
		default:
			return nil, fmt.Errorf("%w: %s: field %q has unsupported type %T", ErrDecode, path, k, v)
		}
		values = append(values, InvoiceValue{Field: k, Value: s})
	}

	return values, nil
}
