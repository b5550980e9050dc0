package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/restaurant-ops/internal/domain"
)

// DateLayout formato de fecha de calendario usado en la API y en el estado persistido.
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha YYYY-MM-DD (o RFC3339) en UTC. Cadena vacía = zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t.UTC(), nil
}

// ParseDateOrZero como ParseDate pero una fecha inválida se convierte en zero time.
func ParseDateOrZero(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate formatea t como YYYY-MM-DD; zero time = "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
