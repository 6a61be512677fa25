package config

import (
	"time"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/pkg/types"
)

// NewInvoice собирает начальный счёт: заезд сегодня, выезд завтра
func (c InvoiceConfig) NewInvoice(now time.Time, billNumber string) domain.Invoice {
	return domain.Invoice{
		HotelName:               c.HotelName,
		HotelAddress:            c.HotelAddress,
		PhoneNumber:             c.PhoneNumber,
		CustomerName:            c.CustomerName,
		CustomerAddress:         c.CustomerAddress,
		BillNumber:              billNumber,
		CheckInDate:             now.Format(domain.DateFormat),
		CheckInTime:             c.CheckInTime,
		CheckOutDate:            now.AddDate(0, 0, 1).Format(domain.DateFormat),
		CheckOutTime:            c.CheckOutTime,
		RoomNumber:              c.RoomNumber,
		RoomType:                c.RoomType,
		RoomPrice:               types.NumericString(c.RoomPrice),
		NumberOfPeople:          types.NumericString(c.NumberOfPeople),
		GSTPercentage:           types.NumericString(c.GSTPercentage),
		ServiceChargePercentage: types.NumericString(c.ServiceChargePercentage),
	}
}
