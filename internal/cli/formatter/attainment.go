package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderAttainment renders an actual-vs-target bar like [████░░░░]  80%.
// Green from 95% attainment, yellow from 65%, red below. A zero target
// with zero actual counts as fully attained.
func RenderAttainment(actual, target float64, width int) string {
	if width < 2 {
		width = 2
	}

	pct := 1.0
	if target > 0 {
		pct = actual / target
	}
	if pct < 0 {
		pct = 0
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.65 {
		style = StyleRed
	} else if pct < 0.95 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s", style.Render(bar), fmt.Sprintf("%3.0f%%", pct*100))
}
