package segment

import "strings"

// DefaultBarWidth matches a compact status line cell budget.
const DefaultBarWidth = 10

const (
	barFull  = '█'
	barEmpty = '░'
)

// barEighths[r] is the partial block for a remainder of r eighths.
var barEighths = [8]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// ProgressBar renders pct as exactly width glyphs using full, partial
// (eighth-resolution), and empty blocks.
//
// The rounding rule is fixed-point round-half-up: the +50 before the
// division carries values exactly halfway between two eighths upward.
func ProgressBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	eighths := (pct*width*8 + 50) / 100
	full := eighths / 8
	rem := eighths % 8
	if full > width {
		full = width
	}

	var b strings.Builder
	b.Grow(width * 3)
	for i := 0; i < full; i++ {
		b.WriteRune(barFull)
	}
	cells := full
	if rem > 0 && full < width {
		b.WriteRune(barEighths[rem])
		cells++
	}
	for ; cells < width; cells++ {
		b.WriteRune(barEmpty)
	}
	return b.String()
}
