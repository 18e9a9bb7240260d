package reminders

import (
	"fmt"

	"pet-health/internal/platform/dates"
)

// Status de urgencia de un recordatorio.
// @Enum overdue, upcoming, safe
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusUpcoming Status = "upcoming"
	StatusSafe     Status = "safe"
)

// UpcomingWindow: hasta cuántos días restantes se considera "upcoming".
const UpcomingWindow = 7

type Classification struct {
	DaysRemaining int
	Status        Status
	Badge         string
}

// Classify compara nextDue con today (ambas YYYY-MM-DD):
//
//	d < 0       -> overdue, "overdue by |d| days"
//	d == 0      -> upcoming, "today"
//	0 < d <= 7  -> upcoming, "d days left"
//	d > 7       -> safe
func Classify(nextDue, today string) (Classification, error) {
	d, err := dates.DaysBetween(today, nextDue)
	if err != nil {
		return Classification{}, err
	}

	c := Classification{DaysRemaining: d}
	switch {
	case d < 0:
		c.Status = StatusOverdue
		c.Badge = fmt.Sprintf("overdue by %s", plural(-d))
	case d == 0:
		c.Status = StatusUpcoming
		c.Badge = "today"
	case d <= UpcomingWindow:
		c.Status = StatusUpcoming
		c.Badge = fmt.Sprintf("%s left", plural(d))
	default:
		c.Status = StatusSafe
		c.Badge = fmt.Sprintf("%s left", plural(d))
	}
	return c, nil
}

func plural(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
