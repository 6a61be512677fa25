package update_invoice

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	editInvoice "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
)

// UpdateInvoiceRequest HTTP request model.
// Ключи - имена полей формы, значения - строки или числа:
// {"roomPrice": 6000, "checkOutDate": "2024-01-04"}
type UpdateInvoiceRequest map[string]json.RawMessage

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r UpdateInvoiceRequest) ToUseCaseRequest() (*editInvoice.Request, error) {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	edits := make([]editInvoice.Edit, 0, len(keys))
	for _, k := range keys {
		value, err := rawToString(r[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		edits = append(edits, editInvoice.Edit{Field: k, Value: value})
	}

	return &editInvoice.Request{Edits: edits}, nil
}

// rawToString принимает строку, число или null (пустое значение)
func rawToString(raw json.RawMessage) (string, error) {
	text := strings.TrimSpace(string(raw))

	switch {
	case text == "null":
		return "", nil
	case strings.HasPrefix(text, `"`):
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("expected string or number")
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
			return "", fmt.Errorf("expected string or number")
		}
		return n.String(), nil
	}
}
