package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
)

const (
	footerNotice = "This is a computer-generated invoice and does not require a signature."
)

// Build проецирует счёт и рассчитанные суммы в документ для печати.
// symbol может быть nil: тогда документ печатается без штрихкода.
func Build(inv domain.Invoice, bill domain.Bill, symbol *barcode.Symbol) *Document {
	doc := &Document{
		Title: Title(inv, bill),
		Header: Header{
			HotelName:    inv.HotelName,
			HotelAddress: inv.HotelAddress,
			Phone:        "Phone: " + inv.PhoneNumber,
			Heading:      domain.DocumentTitle,
		},
		Meta: Meta{
			CustomerName:    inv.CustomerName,
			CustomerAddress: inv.CustomerAddress,
			InvoiceNumber:   inv.BillNumber,
			// Счёт выставляется при выезде, поэтому датой счёта считается дата выезда
			Date: DisplayDate(inv.CheckOutDate),
		},
		Stay: Stay{
			CheckIn:    DisplayDate(inv.CheckInDate) + " at " + inv.CheckInTime,
			CheckOut:   DisplayDate(inv.CheckOutDate) + " at " + inv.CheckOutTime,
			RoomNumber: inv.RoomNumber,
			RoomType:   inv.RoomType,
			Guests:     inv.NumberOfPeople.String(),
			Duration:   fmt.Sprintf("%d %s", bill.Nights, bill.NightsLabel()),
		},
		Lines: []Line{
			{
				Description: inv.RoomType,
				Rate:        Money(bill.RoomPrice),
				Nights:      strconv.Itoa(bill.Nights),
				Amount:      Money(bill.RoomSubtotal),
			},
			{
				Description: fmt.Sprintf("Service Charge (%s%%)", inv.ServiceChargePercentage),
				Amount:      Money(bill.ServiceCharge),
			},
			{
				Description: fmt.Sprintf("GST (%s%%)", inv.GSTPercentage),
				Amount:      Money(bill.GSTAmount),
			},
		},
		Total: Line{
			Description: "Total Amount",
			Amount:      Money(bill.Total),
		},
		Footer: Footer{
			ThankYou: fmt.Sprintf("Thank you for choosing %s!", inv.HotelName),
			Contact:  "For inquiries, please contact: " + inv.PhoneNumber,
			Notice:   footerNotice,
		},
	}

	if symbol != nil {
		doc.Footer.Barcode = &Barcode{
			Value:  symbol.Value,
			PNG:    symbol.PNG,
			Width:  symbol.Width,
			Height: symbol.Height,
		}
	}

	return doc
}

// Title строит заголовок документа, он же предлагаемое имя файла:
// <hotelName>-<checkInDate>-<checkOutDate>-<nights>-<total>-hotel-bill
func Title(inv domain.Invoice, bill domain.Bill) string {
	return strings.Join([]string{
		inv.HotelName,
		inv.CheckInDate,
		inv.CheckOutDate,
		strconv.Itoa(bill.Nights),
		bill.Total.String(),
		domain.TitleSuffix,
	}, domain.TitleSep)
}

// Money форматирует сумму ровно с двумя знаками после запятой
func Money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyDecimals)
}

// DisplayDate переводит YYYY-MM-DD в DD/MM/YYYY.
// Нераспознанная дата выводится как есть.
func DisplayDate(s string) string {
	d, ok := domain.ParseDate(s)
	if !ok {
		return s
	}
	return d.Format(domain.DisplayDateFormat)
}
