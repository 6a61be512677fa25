package render

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/service/document"
)

//go:embed templates/bill.html
var templatesFS embed.FS

var billTemplate = template.Must(
	template.New("bill.html").
		Funcs(template.FuncMap{"dataURI": dataURI}).
		ParseFS(templatesFS, "templates/bill.html"),
)

// htmlView данные шаблона
type htmlView struct {
	Title     string
	Doc       *document.Document
	Currency  string
	AutoPrint bool
}

// HTMLRenderer рендерит самодостаточную HTML-страницу счёта:
// стили встроены, штрихкод вшит как data: URI.
type HTMLRenderer struct {
	autoPrint bool
}

// NewHTMLRenderer создает HTML-рендерер.
// При autoPrint страница сама открывает диалог печати после загрузки и закрывается.
func NewHTMLRenderer(autoPrint bool) *HTMLRenderer {
	return &HTMLRenderer{autoPrint: autoPrint}
}

// Render рендерит документ в HTML
func (r *HTMLRenderer) Render(doc *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	err := billTemplate.Execute(&buf, htmlView{
		Title:     doc.Title,
		Doc:       doc,
		Currency:  domain.CurrencySymbol,
		AutoPrint: r.autoPrint,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: html: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// RenderFragment рендерит только тело счёта, без <html> и скрипта печати (для превью)
func (r *HTMLRenderer) RenderFragment(doc *document.Document) (template.HTML, error) {
	var buf bytes.Buffer
	if err := billTemplate.ExecuteTemplate(&buf, "bill", htmlView{
		Title:    doc.Title,
		Doc:      doc,
		Currency: domain.CurrencySymbol,
	}); err != nil {
		return "", fmt.Errorf("%w: html fragment: %v", ErrRender, err)
	}
	// Вывод уже экранирован шаблоном
	return template.HTML(buf.String()), nil
}

func (r *HTMLRenderer) Format() Format {
	return FormatHTML
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func dataURI(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
