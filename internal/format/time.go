// Package format renders timestamps using the display_date and display_time
// config keys.
package format

import (
	"fmt"
	"time"

	"github.com/bmdict/cli/internal/config"
)

// Layouts holds the Go time layouts for dates and times.
type Layouts struct {
	Date string
	Time string
}

// LayoutsFrom reads display_date and display_time through get. Presets are
// "yyyy-mm-dd", "dd/mm/yyyy" and "mm/dd/yyyy"; any other non-empty date value
// is used as a Go layout. Times are "24h" (default) or "12h".
func LayoutsFrom(get func(string) (string, bool)) Layouts {
	displayDate, _ := get("display_date")
	displayTime, _ := get("display_time")
	return Layouts{Date: dateLayout(displayDate), Time: timeLayout(displayTime)}
}

func dateLayout(v string) string {
	switch v {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	case "mm/dd/yyyy":
		return "01/02/2006"
	default:
		return v
	}
}

func timeLayout(v string) string {
	if v == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}

// DateTime formats t in local time with the configured layouts.
func DateTime(t time.Time) string {
	return LayoutsFrom(config.Get).DateTime(t)
}

func (l Layouts) DateTime(t time.Time) string {
	return t.Local().Format(l.Date + " " + l.Time)
}

// Relative describes how long before now t was, e.g. "3 hours ago".
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "just now"
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Timestamp parses an RFC 3339 value and renders it as "<date time> (<relative>)".
// Unparseable input is returned unchanged.
func Timestamp(value string, l Layouts, now time.Time) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s (%s)", l.DateTime(t), Relative(t, now))
}
