package views

import "github.com/mattn/go-runewidth"

// fit cuts line to width cells.
func fit(line string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(line, width, "…")
}

// fitLines fits each line and keeps at most height of them.
func fitLines(lines []string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fit(line, width)
	}
	return out
}
