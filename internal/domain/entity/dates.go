package entity

import (
	"strings"
	"time"
)

// DateLayout formato de fecha del feed Supir y del almacén (ISO, yyyy-MM-dd).
const DateLayout = "2006-01-02"

// NoDateSentinel valor literal que representa "sin fecha" en el feed y en la
// columna de vencimiento del almacén.
const NoDateSentinel = "N/A"

// ParseOptionalDate interpreta una fecha opcional: vacío, espacios o "N/A"
// (sin distinguir mayúsculas) devuelven nil sin error; cualquier otro valor
// debe ser ISO yyyy-MM-dd o se devuelve el error de parseo.
func ParseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, NoDateSentinel) {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatOptionalDate devuelve la fecha en ISO o "" si es nil.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
