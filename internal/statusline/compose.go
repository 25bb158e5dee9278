// Package statusline assembles the final status line from its segments.
package statusline

import "strings"

// Separator joins segments. Fixed; the surrounding layout belongs to the
// host, not this tool.
const Separator = " │ "

// Segment pairs a rendered text with its config toggle.
type Segment struct {
	Enabled bool
	Text    string
}

// Compose joins the enabled, non-empty segments with Separator. No
// leading or trailing separator; order is the caller's fixed order.
func Compose(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Enabled && s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, Separator)
}
