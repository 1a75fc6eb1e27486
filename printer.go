package push

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Print renders an item in canonical surface syntax. Parse wraps its
// top-level items in one list, so parsing the result with the same
// registry yields a one-element list whose element is structurally
// equal to it. NaN and infinite floats print as NaN/+Inf/-Inf, which
// parse back as names.
func Print(it Item) string { return it.String() }

// DumpStack renders a stack's contents, one item per line, right
// aligned into a single column so a caller inspecting several dumps
// side by side gets a readable table. Width is measured in terminal
// cells with go-runewidth/uniseg rather than bytes or runes, since
// NAME items may carry multi-byte identifiers.
func DumpStack(label string, items []Item) string {
	if len(items) == 0 {
		return label + ": <empty>\n"
	}
	rendered := make([]string, len(items))
	width := 0
	for i, it := range items {
		rendered[i] = it.String()
		if w := displayWidth(rendered[i]); w > width {
			width = w
		}
	}
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	for i := len(rendered) - 1; i >= 0; i-- {
		b.WriteString("  ")
		b.WriteString(runewidth.FillLeft(rendered[i], width))
		b.WriteByte('\n')
	}
	return b.String()
}

func displayWidth(s string) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += runewidth.StringWidth(g.Str())
	}
	return w
}
