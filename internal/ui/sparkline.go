package ui

import "time"

// sparklineChars maps levels 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline draws one block per value, scaled so the largest value
// gets the full block. Negative values are drawn as zero.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		idx := 0
		if peak > 0 && v > 0 {
			idx = min(int(v/peak*7.0), 7)
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// RenderDurationSparkline is RenderSparkline over durations.
func RenderDurationSparkline(ds []time.Duration) string {
	values := make([]float64, len(ds))
	for i, d := range ds {
		values[i] = float64(d)
	}
	return RenderSparkline(values)
}
