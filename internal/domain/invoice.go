package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelBillService/pkg/types"
)

// Field is the name of an editable invoice field as it appears in the form
type Field string

const (
	FieldHotelName               Field = "hotelName"
	FieldHotelAddress            Field = "hotelAddress"
	FieldCustomerName            Field = "customerName"
	FieldCustomerAddress         Field = "customerAddress"
	FieldCheckInDate             Field = "checkInDate"
	FieldCheckInTime             Field = "checkInTime"
	FieldCheckOutDate            Field = "checkOutDate"
	FieldCheckOutTime            Field = "checkOutTime"
	FieldRoomNumber              Field = "roomNumber"
	FieldRoomType                Field = "roomType"
	FieldRoomPrice               Field = "roomPrice"
	FieldNumberOfPeople          Field = "numberOfPeople"
	FieldGSTPercentage           Field = "gstPercentage"
	FieldServiceChargePercentage Field = "serviceChargePercentage"
	FieldPhoneNumber             Field = "phoneNumber"
	FieldBillNumber              Field = "billNumber"
)

// Fields lists every editable field in form order
var Fields = []Field{
	FieldHotelName,
	FieldBillNumber,
	FieldHotelAddress,
	FieldCustomerName,
	FieldCustomerAddress,
	FieldCheckInDate,
	FieldCheckInTime,
	FieldCheckOutDate,
	FieldCheckOutTime,
	FieldRoomNumber,
	FieldRoomType,
	FieldRoomPrice,
	FieldNumberOfPeople,
	FieldGSTPercentage,
	FieldServiceChargePercentage,
	FieldPhoneNumber,
}

// ParseField converts a form key into a Field
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// IsNumeric returns true for fields that are coerced to numbers in calculations
func (f Field) IsNumeric() bool {
	switch f {
	case FieldRoomPrice, FieldNumberOfPeople, FieldGSTPercentage, FieldServiceChargePercentage:
		return true
	default:
		return false
	}
}

// Invoice is the editable hotel bill record.
// It is a value: edits return a new Invoice instead of changing the receiver.
type Invoice struct {
	// Identity
	HotelName       string
	HotelAddress    string
	PhoneNumber     string
	CustomerName    string
	CustomerAddress string
	BillNumber      string

	// Stay window
	CheckInDate  string // YYYY-MM-DD
	CheckInTime  string // HH:MM, only displayed
	CheckOutDate string // YYYY-MM-DD
	CheckOutTime string // HH:MM, only displayed

	// Room
	RoomNumber string
	RoomType   string
	RoomPrice  types.NumericString

	// Occupancy
	NumberOfPeople types.NumericString

	// Rates, percent of room subtotal
	GSTPercentage           types.NumericString
	ServiceChargePercentage types.NumericString
}

// With returns a copy of the invoice with one field replaced
func (inv Invoice) With(field Field, value string) (Invoice, error) {
	switch field {
	case FieldHotelName:
		inv.HotelName = value
	case FieldHotelAddress:
		inv.HotelAddress = value
	case FieldCustomerName:
		inv.CustomerName = value
	case FieldCustomerAddress:
		inv.CustomerAddress = value
	case FieldCheckInDate:
		inv.CheckInDate = value
	case FieldCheckInTime:
		inv.CheckInTime = value
	case FieldCheckOutDate:
		inv.CheckOutDate = value
	case FieldCheckOutTime:
		inv.CheckOutTime = value
	case FieldRoomNumber:
		inv.RoomNumber = value
	case FieldRoomType:
		inv.RoomType = value
	case FieldRoomPrice:
		inv.RoomPrice = types.NumericString(value)
	case FieldNumberOfPeople:
		inv.NumberOfPeople = types.NumericString(value)
	case FieldGSTPercentage:
		inv.GSTPercentage = types.NumericString(value)
	case FieldServiceChargePercentage:
		inv.ServiceChargePercentage = types.NumericString(value)
	case FieldPhoneNumber:
		inv.PhoneNumber = value
	case FieldBillNumber:
		inv.BillNumber = value
	default:
		return inv, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return inv, nil
}

// Value returns the raw value of a field as shown in the form
func (inv Invoice) Value(field Field) (string, error) {
	switch field {
	case FieldHotelName:
		return inv.HotelName, nil
	case FieldHotelAddress:
		return inv.HotelAddress, nil
	case FieldCustomerName:
		return inv.CustomerName, nil
	case FieldCustomerAddress:
		return inv.CustomerAddress, nil
	case FieldCheckInDate:
		return inv.CheckInDate, nil
	case FieldCheckInTime:
		return inv.CheckInTime, nil
	case FieldCheckOutDate:
		return inv.CheckOutDate, nil
	case FieldCheckOutTime:
		return inv.CheckOutTime, nil
	case FieldRoomNumber:
		return inv.RoomNumber, nil
	case FieldRoomType:
		return inv.RoomType, nil
	case FieldRoomPrice:
		return inv.RoomPrice.String(), nil
	case FieldNumberOfPeople:
		return inv.NumberOfPeople.String(), nil
	case FieldGSTPercentage:
		return inv.GSTPercentage.String(), nil
	case FieldServiceChargePercentage:
		return inv.ServiceChargePercentage.String(), nil
	case FieldPhoneNumber:
		return inv.PhoneNumber, nil
	case FieldBillNumber:
		return inv.BillNumber, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// CheckIn returns the parsed check-in calendar date
func (inv Invoice) CheckIn() (time.Time, bool) {
	return ParseDate(inv.CheckInDate)
}

// CheckOut returns the parsed check-out calendar date
func (inv Invoice) CheckOut() (time.Time, bool) {
	return ParseDate(inv.CheckOutDate)
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
