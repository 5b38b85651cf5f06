package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamfortasks/internal/chart"
)

// PieChart draws the arcs as inline SVG followed by a legend listing every
// slice, zero-value ones included.
func PieChart(arcs []chart.Arc, radius float64) g.Node {
	size := strconv.FormatFloat(2*radius, 'f', -1, 64)
	return Div(
		Class("h-40 flex items-center gap-4"),
		g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("viewBox", "0 0 "+size+" "+size),
			g.Attr("role", "img"),
			g.Attr("aria-label", "Pie breakdown"),
			Class("h-36 w-36"),
			g.Map(arcs, func(a chart.Arc) g.Node {
				return g.If(a.Path != "", g.El("path",
					g.Attr("d", a.Path),
					g.Attr("fill", a.Color),
					g.El("title", g.Text(a.Name+": "+value(a.Value))),
				))
			}),
		),
		Ul(
			Class("space-y-1 text-xs"),
			g.Map(arcs, func(a chart.Arc) g.Node {
				return Li(
					Class("flex items-center gap-2"),
					g.Attr("data-slice", a.Name),
					g.Attr("data-value", value(a.Value)),
					Span(Class("inline-block h-2 w-2 rounded-full"), Style("background-color:"+a.Color)),
					g.Text(a.Name+": "+value(a.Value)),
				)
			}),
		),
	)
}

func value(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
