// Package chart lays out the demo pie chart as SVG paths.
package chart

import (
	"fmt"
	"math"
	"strconv"

	"teamfortasks/internal/fixtures"
)

// DefaultPalette colors Pending, To Verify and Completed.
var DefaultPalette = []string{"#fbbf24", "#a78bfa", "#34d399"}

// Arc is one drawable slice. Path is empty for zero-value slices.
type Arc struct {
	Name    string
	Value   float64
	Percent float64
	Color   string
	Path    string
}

// Pie computes one arc per slice, in input order, for a pie of the given
// radius centered at (radius, radius). Slices start at twelve o'clock and run
// clockwise. Colors cycle through palette.
func Pie(slices []fixtures.PieSlice, palette []string, radius float64) []Arc {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	var total float64
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}

	arcs := make([]Arc, len(slices))
	start := -math.Pi / 2
	for i, s := range slices {
		arc := Arc{Name: s.Name, Value: s.Value, Color: palette[i%len(palette)]}
		if total > 0 && s.Value > 0 {
			frac := s.Value / total
			arc.Percent = frac * 100
			sweep := frac * 2 * math.Pi
			arc.Path = slicePath(radius, start, sweep)
			start += sweep
		}
		arcs[i] = arc
	}
	return arcs
}

func slicePath(r, start, sweep float64) string {
	c := r
	if sweep >= 2*math.Pi-1e-9 {
		return fmt.Sprintf("M%s %s A%s %s 0 1 1 %s %s A%s %s 0 1 1 %s %s Z",
			num(c-r), num(c), num(r), num(r), num(c+r), num(c), num(r), num(r), num(c-r), num(c))
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	end := start + sweep
	return fmt.Sprintf("M%s %s L%s %s A%s %s 0 %d 1 %s %s Z",
		num(c), num(c),
		num(c+r*math.Cos(start)), num(c+r*math.Sin(start)),
		num(r), num(r), large,
		num(c+r*math.Cos(end)), num(c+r*math.Sin(end)))
}

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
