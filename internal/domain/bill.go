package domain

import "github.com/shopspring/decimal"

// Bill holds the figures derived from an Invoice.
// It is never stored: it is recalculated from the invoice on every read.
type Bill struct {
	Nights        int
	RoomPrice     decimal.Decimal // room price after numeric coercion
	RoomSubtotal  decimal.Decimal // RoomPrice * Nights
	ServiceCharge decimal.Decimal // RoomSubtotal * service charge % / 100
	GSTAmount     decimal.Decimal // RoomSubtotal * GST % / 100
	Total         decimal.Decimal // RoomSubtotal + ServiceCharge + GSTAmount
}

// NightsLabel returns "night" for a single night and "nights" otherwise
func (b Bill) NightsLabel() string {
	if b.Nights == 1 {
		return "night"
	}
	return "nights"
}
