package market

import (
	"fmt"
	"time"
)

// Period is one monthly delivery slot in the optimization horizon.
// Index is the position within the horizon (0-based); Start is the first
// day of the delivery month and anchors nomination-deadline arithmetic.
type Period struct {
	Index int
	Start time.Time
}

// Label renders the period as YYYY-MM for reports and error messages.
func (p Period) Label() string {
	return p.Start.Format("2006-01")
}

// Month returns the calendar month, used by the seasonal demand table.
func (p Period) Month() time.Month {
	return p.Start.Month()
}

func (p Period) String() string {
	return fmt.Sprintf("P%d[%s]", p.Index, p.Label())
}

// Horizon builds n consecutive monthly periods starting at the month
// containing start. Day-of-month and clock components are truncated.
func Horizon(start time.Time, n int) []Period {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]Period, n)
	for i := range out {
		out[i] = Period{Index: i, Start: first.AddDate(0, i, 0)}
	}
	return out
}
