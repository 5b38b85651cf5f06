package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamfortasks/internal/view"
)

const circle = "M22 12a10 10 0 1 1-20 0 10 10 0 0 1 20 0z"

var iconPaths = map[view.Icon][]string{
	view.IconList:        {"m3 17 2 2 4-4", "m3 7 2 2 4-4", "M13 6h8", "M13 12h8", "M13 18h8"},
	view.IconClock:       {circle, "M12 6v6h4.5"},
	view.IconBadgeCheck:  {"M3.85 8.62a4 4 0 0 1 4.78-4.77 4 4 0 0 1 6.74 0 4 4 0 0 1 4.78 4.78 4 4 0 0 1 0 6.74 4 4 0 0 1-4.77 4.78 4 4 0 0 1-6.75 0 4 4 0 0 1-4.78-4.77 4 4 0 0 1 0-6.76z", "m9 12 2 2 4-4"},
	view.IconCheckCircle: {circle, "m9 12 2 2 4-4"},
	view.IconSparkles:    {"M12 3l1.9 5.8L20 10l-6.1 1.9L12 18l-1.9-6.1L4 10l6.1-1.2z"},
	view.IconUsers:       {"M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2", "M9 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z", "M22 21v-2a4 4 0 0 0-3-3.87", "M16 3.13a4 4 0 0 1 0 7.75"},
	view.IconBarChart:    {"M3 3v18h18", "M18 17V9", "M13 17V5", "M8 17v-3"},
	view.IconLayout:      {"M3 3h7v9H3z", "M14 3h7v5h-7z", "M14 12h7v9h-7z", "M3 16h7v5H3z"},
	view.IconShield:      {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10", "m9 12 2 2 4-4"},
	view.IconZap:         {"M13 2 3 14h9l-1 8 10-12h-9l1-8z"},
	view.IconPlay:        {circle, "m10 8 6 4-6 4V8z"},
	view.IconArrowRight:  {"M5 12h14", "m12 5 7 7-7 7"},
}

// Icon draws an outline glyph sized by class.
func Icon(icon view.Icon, class string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		Class(class),
		g.Map(iconPaths[icon], func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}
