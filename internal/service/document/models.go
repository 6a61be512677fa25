package document

// Document представление счёта для печати.
// Все значения уже отформатированы, движки рендеринга выводят их как есть.
type Document struct {
	Title  string // предлагаемое имя файла / заголовок окна печати
	Header Header
	Meta   Meta
	Stay   Stay
	Lines  []Line
	Total  Line
	Footer Footer
}

// Header шапка счёта
type Header struct {
	HotelName    string
	HotelAddress string
	Phone        string // "Phone: ..."
	Heading      string // "INVOICE"
}

// Meta блок "Bill To" и реквизиты счёта
type Meta struct {
	CustomerName    string
	CustomerAddress string
	InvoiceNumber   string
	Date            string // дата выезда в формате DD/MM/YYYY
}

// Stay сведения о проживании
type Stay struct {
	CheckIn    string // "DD/MM/YYYY at HH:MM"
	CheckOut   string
	RoomNumber string
	RoomType   string
	Guests     string
	Duration   string // "2 nights"
}

// Line строка таблицы начислений.
// Rate и Nights заполнены только у строки проживания.
type Line struct {
	Description string
	Rate        string
	Nights      string
	Amount      string
}

// HasRate возвращает true для строки с ценой и количеством ночей
func (l Line) HasRate() bool {
	return l.Rate != "" || l.Nights != ""
}

// Footer подвал счёта
type Footer struct {
	Barcode  *Barcode // nil, если штрихкод не удалось построить
	ThankYou string
	Contact  string
	Notice   string
}

// Barcode штрихкод номера счёта
type Barcode struct {
	Value  string
	PNG    []byte
	Width  int
	Height int
}
