package game

import "strings"

// glyphWidth is the advance of ebitenutil's debug font in pixels.
const glyphWidth = 6

// wrapText breaks s into lines of at most width characters at spaces.
// Words longer than width get a line of their own.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(s) {
		switch {
		case n == 0:
		case n+1+len(word) > width:
			b.WriteByte('\n')
			n = 0
		default:
			b.WriteByte(' ')
			n++
		}
		b.WriteString(word)
		n += len(word)
	}
	return b.String()
}

// columns returns how many debug-font characters fit across px pixels,
// leaving room for the label inset.
func columns(px float64) int {
	return int(px-8) / glyphWidth
}
