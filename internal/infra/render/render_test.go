package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
	"github.com/m04kA/SMC-HotelBillService/internal/service/billing"
	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

func testDocument(t *testing.T, withBarcode bool) *document.Document {
	t.Helper()

	inv := domain.Invoice{
		HotelName:               "Grand Royal Hotel",
		HotelAddress:            "123 Luxury Avenue, New Delhi, India",
		PhoneNumber:             "+91 98765 43210",
		CustomerName:            "John <Doe>",
		CustomerAddress:         "456 Guest Street, Mumbai, India",
		BillNumber:              "INV-123456",
		CheckInDate:             "2024-01-01",
		CheckInTime:             "14:00",
		CheckOutDate:            "2024-01-03",
		CheckOutTime:            "12:00",
		RoomNumber:              "301",
		RoomType:                "Deluxe Suite",
		RoomPrice:               "5000",
		NumberOfPeople:          "2",
		GSTPercentage:           "18",
		ServiceChargePercentage: "10",
	}

	var sym *barcode.Symbol
	if withBarcode {
		var err error
		sym, err = barcode.NewEncoder(2, 40).Encode(inv.BillNumber)
		require.NoError(t, err)
	}

	return document.Build(inv, billing.Calculate(inv), sym)
}

func TestHTMLRenderer_Render(t *testing.T) {
	doc := testDocument(t, true)

	out, err := NewHTMLRenderer(true).Render(doc)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>Grand Royal Hotel-2024-01-01-2024-01-03-2-12800-hotel-bill</title>")
	assert.Contains(t, html, "123 Luxury Avenue, New Delhi, India")
	// html/template экранирует "+" в тексте
	assert.Contains(t, html, "Phone: &#43;91 98765 43210")
	assert.Contains(t, html, "INV-123456")
	assert.Contains(t, html, "03/01/2024")
	assert.Contains(t, html, "01/01/2024 at 14:00")
	assert.Contains(t, html, "2 nights")
	assert.Contains(t, html, "Service Charge (10%)")
	assert.Contains(t, html, "GST (18%)")
	assert.Contains(t, html, "10000.00")
	assert.Contains(t, html, "₹12800.00")
	assert.Contains(t, html, "Thank you for choosing Grand Royal Hotel!")
	assert.Contains(t, html, "This is a computer-generated invoice and does not require a signature.")

	// Данные пользователя экранируются
	assert.Contains(t, html, "John &lt;Doe&gt;")

	// Документ самодостаточный: стили встроены, внешних таблиц стилей нет
	assert.Contains(t, html, "<style>")
	assert.NotContains(t, html, "<link")
	assert.Contains(t, html, `src="data:image/png;base64,`)
	assert.Contains(t, html, "window.print()")
}

func TestHTMLRenderer_WithoutBarcodeAndAutoPrint(t *testing.T) {
	doc := testDocument(t, false)

	out, err := NewHTMLRenderer(false).Render(doc)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<img")
	assert.NotContains(t, string(out), "window.print()")
	assert.Contains(t, string(out), "Total Amount")
}

func TestHTMLRenderer_RenderFragment(t *testing.T) {
	doc := testDocument(t, true)

	fragment, err := NewHTMLRenderer(true).RenderFragment(doc)
	require.NoError(t, err)

	assert.NotContains(t, string(fragment), "<html>")
	assert.NotContains(t, string(fragment), "window.print()")
	assert.Contains(t, string(fragment), "INV-123456")
}

func TestPDFRenderer_Render(t *testing.T) {
	for _, withBarcode := range []bool{true, false} {
		out, err := NewPDFRenderer().Render(testDocument(t, withBarcode))
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		assert.Greater(t, len(out), 500)
	}
}

func TestPDFRenderer_NonLatinText(t *testing.T) {
	tests := []struct {
		name    string
		hotel   string
		wantErr bool
	}{
		{name: "cyrillic", hotel: "Гранд Отель"},
		{name: "greek", hotel: "Ξενοδοχείο"},
		{name: "latin extended", hotel: "Hôtel Żółć"},
		{name: "devanagari", hotel: "होटल ताज", wantErr: true},
		{name: "cjk", hotel: "東京ホテル", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument(t, true)
			doc.Header.HotelName = tt.hotel

			out, err := NewPDFRenderer().Render(doc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedText)
				assert.ErrorIs(t, err, ErrRender)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		})
	}
}

func TestFontCovers(t *testing.T) {
	for _, r := range "Aé Żß Жж Ωω 0-9 ₹€ ,.;:()%/&" {
		assert.True(t, fontCovers(r), "%q", r)
	}
	for _, r := range "हट東ホ한ا" {
		assert.False(t, fontCovers(r), "%q", r)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "pdf", f.Extension())

	f, err = ParseFormat(" html ")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(NewHTMLRenderer(true), NewPDFRenderer())

	r, err := reg.Get(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", r.ContentType())

	r, err = reg.Get(FormatHTML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.ContentType(), "text/html"))

	_, err = NewRegistry(NewHTMLRenderer(true)).Get(FormatPDF)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
