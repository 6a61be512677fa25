package billing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/pkg/types"
)

const secondsPerDay = 24 * 60 * 60

var hundred = decimal.NewFromInt(100)

// Calculate вычисляет все производные суммы счёта.
// Чистая функция: без кэша, результат зависит только от полей invoice.
func Calculate(inv domain.Invoice) domain.Bill {
	nights := Nights(inv)

	roomPrice := toDecimal(inv.RoomPrice)
	roomSubtotal := roomPrice.Mul(decimal.NewFromInt(int64(nights)))

	// Сбор и GST считаются от стоимости проживания, друг на друга не начисляются
	serviceCharge := percentOf(roomSubtotal, inv.ServiceChargePercentage)
	gstAmount := percentOf(roomSubtotal, inv.GSTPercentage)

	return domain.Bill{
		Nights:        nights,
		RoomPrice:     roomPrice,
		RoomSubtotal:  roomSubtotal,
		ServiceCharge: serviceCharge,
		GSTAmount:     gstAmount,
		Total:         roomSubtotal.Add(serviceCharge).Add(gstAmount),
	}
}

// Nights возвращает количество ночей между датами заезда и выезда.
// Результат не меньше domain.MinNights: при совпадающих, перепутанных
// или нераспознанных датах возвращается 1.
func Nights(inv domain.Invoice) int {
	checkIn, ok := inv.CheckIn()
	if !ok {
		return domain.MinNights
	}
	checkOut, ok := inv.CheckOut()
	if !ok {
		return domain.MinNights
	}

	// Обе даты в UTC без времени, поэтому разница кратна суткам
	days := int((checkOut.Unix() - checkIn.Unix()) / secondsPerDay)
	if days < domain.MinNights {
		return domain.MinNights
	}
	return days
}

// percentOf возвращает base * percent / 100
func percentOf(base decimal.Decimal, percent types.NumericString) decimal.Decimal {
	return base.Mul(toDecimal(percent)).Div(hundred)
}

func toDecimal(n types.NumericString) decimal.Decimal {
	return decimal.NewFromFloat(n.Float())
}
