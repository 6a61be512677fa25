package domain

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD, формат ввода дат
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, формат дат в счёте
	TimeFormat        = "15:04"      // HH:MM
)

// Bill number constants
const (
	BillNumberPrefix = "INV"
	BillNumberMin    = 100000
	BillNumberMax    = 999999
)

// CurrencySymbol выводится перед суммами во всех форматах
const CurrencySymbol = "₹"

// Billing constants
const (
	MinNights     = 1
	MoneyDecimals = 2
)

// Document constants
const (
	ViewTitle     = "Hotel Bill Generator"
	DocumentTitle = "INVOICE"
	TitleSuffix   = "hotel-bill"
	TitleSep      = "-"
)
