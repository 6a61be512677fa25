package export

import (
	"strings"
	"unicode"
)

// FileName строит имя файла из заголовка документа.
// Символы, недопустимые в именах файлов, заменяются на "_".
func FileName(title, extension string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))

	if name == "" || name == "." || name == ".." {
		name = "bill"
	}
	if extension == "" {
		return name
	}
	return name + "." + extension
}
