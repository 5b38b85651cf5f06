package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Badge is a small pill label. Variant is "", "secondary" or "outline".
func Badge(variant string, children ...g.Node) g.Node {
	class := "inline-flex items-center rounded-md px-2 py-0.5 text-xs font-semibold"
	switch variant {
	case "secondary":
		class += " bg-secondary text-secondary-foreground"
	case "outline":
		class += " border text-foreground"
	default:
		class += " bg-primary text-primary-foreground"
	}
	return Span(Class(class), g.Group(children))
}

// InertButton renders a control that has no behavior behind it yet. It is
// disabled and tagged so it is never mistaken for a working action.
func InertButton(class string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Disabled(),
		g.Attr("data-unimplemented", "true"),
		Class("inline-flex items-center justify-center "+class),
		g.Group(children),
	)
}

// Card is the rounded container used by every section.
func Card(class string, children ...g.Node) g.Node {
	return Div(Class("rounded-2xl border bg-card text-card-foreground "+class), g.Group(children))
}
