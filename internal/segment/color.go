// Package segment holds the pure rendering functions that map domain
// values to display primitives: a ten-step color gradient, a
// sub-character-precision progress bar, and git status glyphs.
package segment

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient endpoints, calm green to alarm red.
const (
	gradientLowHex  = "#a6e3a1"
	gradientHighHex = "#f38ba8"
)

var (
	bucketColors = buildGradient()

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// buildGradient blends the endpoints in HCL space into ten fixed stops.
// The stops are deterministic: same input, same hex, every invocation.
func buildGradient() [10]lipgloss.Color {
	low, _ := colorful.Hex(gradientLowHex)
	high, _ := colorful.Hex(gradientHighHex)
	var stops [10]lipgloss.Color
	for i := range stops {
		blend := low.BlendHcl(high, float64(i)/float64(len(stops)-1)).Clamped()
		stops[i] = lipgloss.Color(blend.Hex())
	}
	return stops
}

// ColorBucket maps a utilization percentage to a bucket in [1,10].
// Boundaries sit at multiples of ten and are inclusive-low: pct=10 is
// still bucket 1, pct=11 is bucket 2.
func ColorBucket(pct int) int {
	if pct <= 0 {
		return 1
	}
	if pct > 100 {
		pct = 100
	}
	return (pct + 9) / 10
}

// BucketColor returns the gradient stop for a bucket in [1,10].
func BucketColor(bucket int) lipgloss.Color {
	if bucket < 1 {
		bucket = 1
	}
	if bucket > 10 {
		bucket = 10
	}
	return bucketColors[bucket-1]
}

// BucketStyle returns a foreground style matching pct's alarm level.
func BucketStyle(pct int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BucketColor(ColorBucket(pct)))
}
