// Package clock pins time formatting so the rendered output does not
// depend on OS locale settings.
package clock

import (
	"fmt"
	"strings"
	"time"
)

// Formatter renders wall-clock times in either 12h or 24h form. The zero
// value formats 24h.
type Formatter struct {
	TwelveHour bool
}

// Clock formats t as "15:04" or "3:04pm".
func (f Formatter) Clock(t time.Time) string {
	if f.TwelveHour {
		return strings.ToLower(t.Format("3:04PM"))
	}
	return t.Format("15:04")
}

// UntilShort renders a duration as a compact countdown: "2d3h", "1h05m",
// "42m". Anything non-positive is "now".
func UntilShort(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh%02dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
