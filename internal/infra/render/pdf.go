package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

//go:embed fonts/DejaVuSansCondensed.ttf
var fontRegular []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var fontBold []byte

const (
	pdfFont       = "DejaVu"
	pdfLineHeight = 6.0
	pdfMargin     = 15.0
	pxToMM        = 25.4 / 96 // 96 dpi
	barcodeImage  = "barcode"
)

// Ширины колонок таблицы начислений, мм (сумма = ширина A4 без полей)
var pdfColumns = []float64{90, 35, 25, 30}

// PDFRenderer рендерит счёт в PDF формата A4 встроенным шрифтом DejaVu Sans.
// Текст, для которого в шрифте нет глифов (деванагари, CJK и т.п.), не подменяется,
// а приводит к ErrUnsupportedText.
type PDFRenderer struct{}

// NewPDFRenderer создает PDF-рендерер
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render рендерит документ в PDF
func (r *PDFRenderer) Render(doc *document.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", fontBold)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(domain.ViewTitle, true)
	pdf.AddPage()

	guard := &textGuard{}
	tr := guard.check
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin

	// 1. Шапка
	pdf.SetFont(pdfFont, "B", 20)
	pdf.MultiCell(0, 10, tr(strings.ToUpper(doc.Header.HotelName)), "", "C", false)
	pdf.SetFont(pdfFont, "", 10)
	pdf.SetTextColor(75, 85, 99)
	pdf.MultiCell(0, pdfLineHeight, tr(doc.Header.HotelAddress), "", "C", false)
	pdf.MultiCell(0, pdfLineHeight, tr(doc.Header.Phone), "", "C", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 10, tr(doc.Header.Heading), "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	// 2. Получатель и реквизиты счёта
	half := contentW / 2
	top := pdf.GetY()
	pdf.SetFont(pdfFont, "B", 10)
	pdf.CellFormat(half, pdfLineHeight, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	pdf.MultiCell(half, pdfLineHeight, tr(doc.Meta.CustomerName), "", "L", false)
	pdf.MultiCell(half, pdfLineHeight, tr(doc.Meta.CustomerAddress), "", "L", false)
	leftBottom := pdf.GetY()

	pdf.SetXY(pdfMargin+half, top)
	pdf.MultiCell(half, pdfLineHeight, tr("Invoice No: "+doc.Meta.InvoiceNumber), "", "R", false)
	pdf.SetX(pdfMargin + half)
	pdf.MultiCell(half, pdfLineHeight, tr("Date: "+doc.Meta.Date), "", "R", false)
	pdf.SetY(max(leftBottom, pdf.GetY()) + 4)

	// 3. Проживание
	stay := [][2]string{
		{"Check-in: " + doc.Stay.CheckIn, "Check-out: " + doc.Stay.CheckOut},
		{"Room Number: " + doc.Stay.RoomNumber, "Room Type: " + doc.Stay.RoomType},
		{"Guests: " + doc.Stay.Guests, "Stay Duration: " + doc.Stay.Duration},
	}
	pdf.SetFillColor(249, 250, 251)
	for _, row := range stay {
		rowTop := pdf.GetY()
		pdf.MultiCell(half, pdfLineHeight, tr(row[0]), "", "L", true)
		leftBottom := pdf.GetY()
		pdf.SetXY(pdfMargin+half, rowTop)
		pdf.MultiCell(half, pdfLineHeight, tr(row[1]), "", "L", true)
		pdf.SetY(max(leftBottom, pdf.GetY()))
	}
	pdf.Ln(6)

	// 4. Таблица начислений
	currency := " (" + domain.CurrencySymbol + ")"
	pdf.SetFont(pdfFont, "B", 10)
	pdf.SetFillColor(248, 248, 248)
	headers := []string{"Description", "Rate" + currency, "Nights", "Amount" + currency}
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(pdfColumns[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(pdfFont, "", 10)
	spanW := pdfColumns[0] + pdfColumns[1] + pdfColumns[2]
	for _, line := range doc.Lines {
		if line.HasRate() {
			pdf.CellFormat(pdfColumns[0], 8, tr(line.Description), "1", 0, "L", false, 0, "")
			pdf.CellFormat(pdfColumns[1], 8, line.Rate, "1", 0, "R", false, 0, "")
			pdf.CellFormat(pdfColumns[2], 8, line.Nights, "1", 0, "R", false, 0, "")
		} else {
			pdf.CellFormat(spanW, 8, tr(line.Description), "1", 0, "L", false, 0, "")
		}
		pdf.CellFormat(pdfColumns[3], 8, line.Amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont(pdfFont, "B", 10)
	pdf.CellFormat(spanW, 8, tr(doc.Total.Description), "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColumns[3], 8, domain.CurrencySymbol+doc.Total.Amount, "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	// 5. Подвал со штрихкодом
	pdf.SetDrawColor(221, 221, 221)
	pdf.Line(pdfMargin, pdf.GetY(), pageW-pdfMargin, pdf.GetY())
	pdf.Ln(4)

	if b := doc.Footer.Barcode; b != nil {
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(barcodeImage, opt, bytes.NewReader(b.PNG))
		w := float64(b.Width) * pxToMM
		h := float64(b.Height) * pxToMM
		pdf.ImageOptions(barcodeImage, (pageW-w)/2, pdf.GetY(), w, h, true, opt, 0, "")
		pdf.SetFont(pdfFont, "", 9)
		pdf.CellFormat(0, 5, tr(b.Value), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(75, 85, 99)
	pdf.MultiCell(0, 5, tr(doc.Footer.ThankYou), "", "C", false)
	pdf.MultiCell(0, 5, tr(doc.Footer.Contact), "", "C", false)
	pdf.SetFont(pdfFont, "", 8)
	pdf.MultiCell(0, 5, tr(doc.Footer.Notice), "", "C", false)

	if guard.err != nil {
		return nil, guard.err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) Format() Format {
	return FormatPDF
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// textGuard запоминает первую строку с символом, которого нет во встроенном шрифте
type textGuard struct {
	err error
}

func (g *textGuard) check(s string) string {
	if g.err != nil {
		return s
	}
	for _, r := range s {
		if !fontCovers(r) {
			g.err = fmt.Errorf("%w: %q: character %q (U+%04X)", ErrUnsupportedText, s, r, r)
			break
		}
	}
	return s
}

// fontCovers сообщает, есть ли глиф для r в DejaVu Sans:
// латиница, греческий, кириллица, общая пунктуация и знаки валют.
func fontCovers(r rune) bool {
	if r >= 0x2500 {
		return false
	}
	return unicode.In(r, unicode.Latin, unicode.Greek, unicode.Cyrillic, unicode.Common, unicode.Inherited)
}
