package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/fuzzyrank/fuzzyrank"
)

// printResults renders the final selection as a simple ranked table, padding
// the identifier column to its widest entry with go-runewidth so scores line
// up even when candidates contain wide runes. The run summary (precision,
// match count, elapsed time) goes to the logger instead of stdout, so
// stdout stays script-friendly output-only.
func printResults(w io.Writer, selection fuzzyrank.Selection) {
	width := 0
	for _, m := range selection.Matches {
		if w := runewidth.StringWidth(m.Identifier); w > width {
			width = w
		}
	}

	for rank, m := range selection.Matches {
		padded := runewidth.FillRight(m.Identifier, width)
		fmt.Fprintf(w, "%3d  %s  score=%.4f\n", rank+1, padded, m.Score.Value())
	}
}
