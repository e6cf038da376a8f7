package utils

import (
	"fmt"
	"strings"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth aceita YYYY-MM ou YYYY-MM-DD e devolve o primeiro instante do mês em UTC
func ParseMonth(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if len(value) != len(layout) {
			continue
		}
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err != nil {
			continue
		}
		return StartOfMonth(t), nil
	}

	return time.Time{}, fmt.Errorf("mês inválido %q, use YYYY-MM ou YYYY-MM-DD", value)
}

func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthLabel formata o mês como YYYY-MM
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
