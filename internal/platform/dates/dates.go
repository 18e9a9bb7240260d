// Package dates maneja fechas de calendario (sin hora) en formato YYYY-MM-DD.
package dates

import (
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Parse valida s como fecha de calendario y la devuelve normalizada.
func Parse(s string) (string, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.Format(Layout), nil
}

// Today devuelve la fecha de calendario de now en loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(Layout)
}

// AddDays suma n días a una fecha de calendario ya validada.
func AddDays(date string, n int) string {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(Layout)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween = to - from en días de calendario.
// Ambas fechas se interpretan a medianoche UTC; se resta en segundos Unix porque
// time.Duration satura a ~292 años.
func DaysBetween(from, to string) (int, error) {
	f, err := time.Parse(Layout, strings.TrimSpace(from))
	if err != nil {
		return 0, err
	}
	t, err := time.Parse(Layout, strings.TrimSpace(to))
	if err != nil {
		return 0, err
	}
	return int((t.Unix() - f.Unix()) / secondsPerDay), nil
}
