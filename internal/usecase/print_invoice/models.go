package print_invoice

// Request модель запроса на печать счёта
type Request struct {
	Format   string   // "html" или "pdf"
	Exporter Exporter // куда выдать документ
}

// Response модель ответа с результатом выдачи
type Response struct {
	Title    string // заголовок, под которым документ выдан
	Format   string
	Location string // путь к файлу или имя файла в ответе
	Size     int    // размер документа в байтах
}
