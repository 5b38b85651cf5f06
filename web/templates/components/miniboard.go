package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamfortasks/internal/board"
	"teamfortasks/internal/fixtures"
	"teamfortasks/internal/view"
)

// MiniBoard renders the tab strip and the three status columns of the
// active team. Tabs are links to the page with that team selected.
func MiniBoard(tabs []view.Tab, cols []board.Column) g.Node {
	return Div(
		Div(
			Class("grid grid-cols-3 w-full rounded-xl bg-muted p-1"),
			g.Attr("role", "tablist"),
			g.Map(tabs, boardTab),
		),
		Div(
			Class("mt-4 grid md:grid-cols-3 gap-4"),
			g.Attr("role", "tabpanel"),
			g.Map(cols, boardColumn),
		),
	)
}

func boardTab(t view.Tab) g.Node {
	class := "capitalize rounded-lg px-3 py-1.5 text-sm text-center"
	if t.Active {
		class += " bg-background shadow font-medium"
	}
	return A(
		Href(t.Href),
		Class(class),
		g.Attr("role", "tab"),
		g.Attr("aria-selected", strconv.FormatBool(t.Active)),
		g.Attr("data-tab", t.Name),
		g.Text(t.Name),
	)
}

func boardColumn(c board.Column) g.Node {
	return Div(
		Class("rounded-2xl border p-3"),
		g.Attr("data-column", c.Name),
		Div(
			Class("flex items-center justify-between mb-2"),
			H4(Class("font-semibold"), g.Text(c.Name)),
			Badge("outline", g.Text(strconv.Itoa(c.Count()))),
		),
		Div(
			Class("space-y-2"),
			g.If(c.Empty(), P(Class("text-xs text-muted-foreground"), g.Text("No items"))),
			g.Map(c.Tasks, func(t fixtures.Task) g.Node {
				return Div(
					Class("rounded-xl bg-muted/50 border p-2"),
					P(Class("text-sm font-medium"), g.Text(t.Title)),
					P(Class("text-xs text-muted-foreground"), g.Text(t.Due+" • "+string(t.Priority))),
				)
			}),
		),
	)
}
