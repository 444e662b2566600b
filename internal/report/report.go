// Package report formats simulation results for a terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/dcsim/internal/models"
)

// DefaultBarWidth is the histogram width of the most common total
const DefaultBarWidth = 40

// RenderInput contains what to print
type RenderInput struct {
	SuccessRate  float64
	Distribution *models.Distribution

	// Histogram appends a bar scaled to the most common total on each line
	Histogram bool

	// BarWidth overrides DefaultBarWidth when positive
	BarWidth int
}

// Render writes the success rate as a percentage followed by one
// "total: count" line per observed total in ascending order
func Render(w io.Writer, input *RenderInput) error {
	if input == nil || input.Distribution == nil {
		return errors.New("input and distribution cannot be nil")
	}

	if _, err := fmt.Fprintf(w, "Success Rate: %.2f%%\n", input.SuccessRate*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Roll Totals Distribution:"); err != nil {
		return err
	}

	width := input.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}
	peak := 0
	input.Distribution.Each(func(_, count int) {
		peak = max(peak, count)
	})

	var werr error
	input.Distribution.Each(func(total, count int) {
		if werr != nil {
			return
		}
		line := fmt.Sprintf("%d: %d", total, count)
		if input.Histogram {
			line += " " + bar(count, peak, width)
		}
		_, werr = fmt.Fprintln(w, line)
	})
	return werr
}

// bar scales count against peak. Any observed total gets at least one mark.
func bar(count, peak, width int) string {
	if peak == 0 || count == 0 {
		return ""
	}
	n := max(count*width/peak, 1)
	return strings.Repeat("#", n)
}
