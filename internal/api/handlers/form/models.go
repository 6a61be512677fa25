package form

import (
	"html/template"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
)

// actionRegenerate значение кнопки "новый номер счёта"
const actionRegenerate = "regenerate"

// inputDef подпись и тип поля формы. Числовые поля всегда type="number".
type inputDef struct {
	Label string
	Type  string
}

var inputs = map[domain.Field]inputDef{
	domain.FieldHotelName:               {Label: "Hotel Name", Type: "text"},
	domain.FieldBillNumber:              {Label: "Bill Number", Type: "text"},
	domain.FieldHotelAddress:            {Label: "Hotel Address", Type: "text"},
	domain.FieldCustomerName:            {Label: "Customer Name", Type: "text"},
	domain.FieldCustomerAddress:         {Label: "Customer Address", Type: "text"},
	domain.FieldCheckInDate:             {Label: "Check-in Date", Type: "date"},
	domain.FieldCheckInTime:             {Label: "Check-in Time", Type: "time"},
	domain.FieldCheckOutDate:            {Label: "Check-out Date", Type: "date"},
	domain.FieldCheckOutTime:            {Label: "Check-out Time", Type: "time"},
	domain.FieldRoomNumber:              {Label: "Room Number", Type: "text"},
	domain.FieldRoomType:                {Label: "Room Type", Type: "text"},
	domain.FieldRoomPrice:               {Label: "Room Price (" + domain.CurrencySymbol + "/night)"},
	domain.FieldNumberOfPeople:          {Label: "Number of People"},
	domain.FieldGSTPercentage:           {Label: "GST Percentage (%)"},
	domain.FieldServiceChargePercentage: {Label: "Service Charge (%)"},
	domain.FieldPhoneNumber:             {Label: "Contact Number", Type: "text"},
}

// formField поле формы для шаблона
type formField struct {
	Name  string
	Label string
	Type  string
	Value string
}

// pageView данные шаблона страницы
type pageView struct {
	Title      string
	Fields     []formField
	Preview    template.HTML
	Regenerate string
}

func newPageView(title string, inv domain.Invoice, preview template.HTML) pageView {
	fields := make([]formField, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		def := inputs[f]
		if f.IsNumeric() {
			def.Type = "number"
		}
		v, _ := inv.Value(f)
		fields = append(fields, formField{
			Name:  string(f),
			Label: def.Label,
			Type:  def.Type,
			Value: v,
		})
	}

	return pageView{
		Title:      title,
		Fields:     fields,
		Preview:    preview,
		Regenerate: actionRegenerate,
	}
}
