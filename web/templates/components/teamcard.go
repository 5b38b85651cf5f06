package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamfortasks/internal/view"
)

// TeamCard shows a team's progress, its four counters and its task list.
func TeamCard(s view.TeamSummary) g.Node {
	return Card("shadow-sm border-border/50",
		g.Attr("data-team", s.Name),
		Div(
			Class("p-6 pb-2 flex items-center justify-between"),
			H3(
				Class("flex items-center gap-2 text-xl font-semibold"),
				Badge("", g.Text(strconv.Itoa(s.Progress)+"%")),
				g.Text(s.Name),
			),
			Badge("secondary", Icon(view.IconSparkles, "h-3 w-3"), g.Text("Live")),
		),
		Div(
			Class("p-6 pt-0 space-y-4"),
			Div(Class("grid grid-cols-4 gap-2"), g.Map(s.Stats, Stat)),
			Div(Class("space-y-2"), g.Map(s.Rows, taskRow)),
		),
	)
}

func taskRow(r view.TaskRow) g.Node {
	return Div(
		Class("flex items-center justify-between rounded-xl border p-3"),
		Div(
			P(Class("font-medium leading-none"), g.Text(r.Title)),
			P(Class("text-xs text-muted-foreground mt-1"), g.Text(r.Meta())),
		),
		InertButton("rounded-xl border px-3 py-1 text-sm", g.Text("Open")),
	)
}
