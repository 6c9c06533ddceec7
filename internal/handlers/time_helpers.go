package handlers

import (
	"time"

	"github.com/gabrielbarbershop/booking-api/internal/timezone"
)

// datas chegam como YYYY-MM-DD e são interpretadas no timezone da barbearia

func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
