package ui

import "strings"

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline renders the last width values of series as a one-line graph,
// scaled against the series maximum. An all-zero series renders as a flat
// baseline, left-padded so the newest value is always the rightmost cell.
func sparkline(series []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(series) > width {
		series = series[len(series)-width:]
	}

	max := 0.0
	for _, v := range series {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width-len(series)))
	for _, v := range series {
		if max <= 0 || v <= 0 {
			b.WriteRune(sparkRunes[0])
			continue
		}
		idx := int(v / max * float64(len(sparkRunes)-1))
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
