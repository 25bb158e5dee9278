package segment

import (
	"fmt"
	"strings"

	"github.com/LounisBou/claudeline/internal/cache"
	"github.com/LounisBou/claudeline/internal/clock"
	"github.com/LounisBou/claudeline/internal/forecast"
)

// UsagePlaceholder renders when no usage data has ever been obtained
// (or no credentials are configured).
const UsagePlaceholder = "--%"

// GlyphStale prefixes the percentage when an expired snapshot is served
// because a refresh failed.
const GlyphStale = "≈"

// UsageOptions selects which parts of the usage segment render.
type UsageOptions struct {
	ShowBar   bool
	BarWidth  int
	ShowReset bool
	Clock     clock.Formatter
}

// Usage renders the usage gauge: optional progress bar, percentage
// (stale-marked when applicable), optional reset time with a burn-rate
// warning. Unknown renders the dim placeholder; never an error.
func Usage(res cache.Result, opts UsageOptions) string {
	if res.State == cache.Unknown || res.Snapshot == nil {
		return dimStyle.Render(UsagePlaceholder)
	}

	snap := res.Snapshot
	style := BucketStyle(snap.Utilization)

	var parts []string
	if opts.ShowBar {
		width := opts.BarWidth
		if width <= 0 {
			width = DefaultBarWidth
		}
		parts = append(parts, style.Render(ProgressBar(snap.Utilization, width)))
	}

	pct := fmt.Sprintf("%d%%", snap.Utilization)
	if res.State == cache.Stale {
		pct = GlyphStale + pct
	}
	parts = append(parts, style.Render(pct))

	if opts.ShowReset && !snap.ResetsAt.IsZero() {
		label := "↻ " + opts.Clock.Clock(snap.ResetsAt)
		proj := forecast.Project(float64(snap.Utilization), snap.ResetsAt, forecast.FiveHourWindow)
		if !proj.OnTrack {
			label += " ⚠"
		}
		parts = append(parts, dimStyle.Render(label))
	}

	return strings.Join(parts, " ")
}
