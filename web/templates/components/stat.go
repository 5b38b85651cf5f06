package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamfortasks/internal/view"
)

// Stat renders a labeled metric with its icon.
func Stat(s view.StatTile) g.Node {
	return Div(
		Class("items-center gap-2"),
		g.Attr("data-stat", s.Label),
		Div(
			Class("rounded-xl p-2 bg-secondary/20 flex items-center justify-center"),
			Icon(s.Icon, "h-4 w-5"),
		),
		P(Class("text-[10px] font-semibold mt-2 p-0"), g.Text(s.Label)),
		P(Class("p-2"), g.Text(strconv.Itoa(s.Value))),
	)
}
