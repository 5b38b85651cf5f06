// Package landing renders the Team for Tasks marketing page.
package landing

import (
	"encoding/base64"
	"io/fs"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"teamfortasks/internal/pricing"
	"teamfortasks/internal/view"
	"teamfortasks/web"
	"teamfortasks/web/templates/components"
)

// Landing renders the whole page for m. Sections always appear in the same
// order: navbar, hero, features, demo, pricing, call to action, footer.
func Landing(m view.Model) templ.Component {
	return components.Templ(Page(m))
}

// Standalone renders the page with the site stylesheet and favicon inlined,
// so the output works when opened from disk.
func Standalone(m view.Model) templ.Component {
	return components.Templ(StandalonePage(m))
}

// Page is the gomponents tree behind Landing.
func Page(m view.Model) g.Node {
	return document(m,
		Link(Rel("icon"), Href("/static/favicon.svg")),
		Link(Rel("stylesheet"), Href(tailwindCSS)),
		Link(Rel("stylesheet"), Href("/static/site.css")),
	)
}

// StandalonePage is the gomponents tree behind Standalone.
func StandalonePage(m view.Model) g.Node {
	return document(m,
		Link(Rel("icon"), Href("data:image/svg+xml;base64,"+base64.StdEncoding.EncodeToString(asset("favicon.svg")))),
		Link(Rel("stylesheet"), Href(tailwindCSS)),
		StyleEl(g.Raw(string(asset("site.css")))),
	)
}

// tailwindCSS is the prebuilt utility stylesheet; site.css adds the theme.
const tailwindCSS = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"

func document(m view.Model, assets ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text("Team for Tasks")),
				g.Group(assets),
			),
			Body(
				Class("min-h-screen bg-gradient-to-b from-background via-background to-muted/30 text-foreground"),
				navbar(),
				hero(m),
				featureSection(),
				demo(m),
				pricingSection(m),
				callToAction(),
				footer(m.Year),
			),
		),
	)
}

// asset reads an embedded static file. The set is fixed at build time, so a
// miss is a programming error.
func asset(name string) []byte {
	data, err := fs.ReadFile(web.Static(), name)
	if err != nil {
		panic(err)
	}
	return data
}

func navbar() g.Node {
	return Header(
		Class("sticky top-0 z-40 backdrop-blur bg-background/70 border-b"),
		Div(
			Class("mx-auto max-w-7xl px-4 py-3 flex items-center justify-between"),
			Div(
				Class("flex items-center gap-2"),
				Div(Class("h-8 w-8 rounded-2xl bg-primary/10 grid place-items-center"), components.Icon(view.IconList, "h-4 w-4")),
				Span(Class("font-semibold"), g.Text("Team for Tasks")),
			),
			Nav(
				Class("hidden md:flex items-center gap-6 text-sm text-muted-foreground"),
				A(Href("#features"), Class("hover:text-foreground"), g.Text("Features")),
				A(Href("#demo"), Class("hover:text-foreground"), g.Text("Live demo")),
				A(Href("#pricing"), Class("hover:text-foreground"), g.Text("Pricing")),
				A(Href("#faq"), Class("hover:text-foreground"), g.Text("FAQ")),
			),
			Div(
				Class("flex items-center gap-3"),
				components.InertButton("rounded-xl px-4 py-2", g.Text("Sign in")),
				components.InertButton("rounded-xl px-4 py-2 bg-primary text-primary-foreground",
					g.Text("Launch App"), components.Icon(view.IconArrowRight, "ml-2 h-4 w-4")),
			),
		),
	)
}

func hero(m view.Model) g.Node {
	return Section(
		Class("mx-auto max-w-7xl px-4 py-16 md:py-24"),
		Div(
			Class("grid md:grid-cols-2 gap-10 items-center"),
			Div(
				H1(Class("text-4xl md:text-5xl font-bold tracking-tight fade-in"), g.Text("Run your stores like clockwork.")),
				P(
					Class("mt-4 text-muted-foreground text-lg"),
					g.Text(`"Team for Tasks" is a lightweight team task OS built for retail floors and service teams. See everything—pending, to verify, completed—across people and stores in one clean view.`),
				),
				Div(
					Class("mt-6 flex flex-col sm:flex-row gap-3"),
					components.InertButton("rounded-2xl px-6 py-3 bg-primary text-primary-foreground", g.Text("Get started free")),
					components.InertButton("rounded-2xl px-6 py-3 border",
						components.Icon(view.IconPlay, "mr-2 h-4 w-4"), g.Text("Watch 60‑sec demo")),
				),
				Div(
					Class("mt-6 flex items-center gap-4 text-sm text-muted-foreground"),
					Div(Class("flex items-center gap-2"), components.Icon(view.IconShield, "h-4 w-4"), g.Text("Role‑based access")),
					Div(Class("flex items-center gap-2"), components.Icon(view.IconZap, "h-4 w-4"), g.Text("WhatsApp alerts")),
				),
			),
			components.Card("shadow-lg fade-in",
				Div(
					Class("p-6 pb-2"),
					H3(Class("flex items-center gap-2 font-semibold"), components.Icon(view.IconLayout, "h-5 w-5"), g.Text("Team Boards")),
				),
				Div(
					Class("p-6 pt-0 grid md:grid-cols-3 gap-4"),
					g.Map(m.Teams, components.TeamCard),
				),
			),
		),
	)
}

type feature struct {
	icon  view.Icon
	title string
	desc  string
}

var featureList = []feature{
	{view.IconUsers, "Employee lists", "Group tasks by people or stores and see status at a glance."},
	{view.IconList, "Templates", "Create once: Daily Open/Close, Display Reset, Service Ticket, and more."},
	{view.IconBarChart, "KPIs & SLAs", "Auto‑track overdue, completion rate, and time‑to‑verify with alerts."},
}

func featureSection() g.Node {
	return Section(
		ID("features"),
		Class("mx-auto max-w-7xl px-4 py-16"),
		Div(
			Class("text-center max-w-2xl mx-auto"),
			H2(Class("text-3xl md:text-4xl font-bold"), g.Text("Everything your team needs")),
			P(Class("mt-3 text-muted-foreground"), g.Text("From assigning work to verifying and closing the loop—optimized for fast‑moving stores.")),
		),
		Div(
			Class("mt-10 grid md:grid-cols-3 gap-6"),
			g.Map(featureList, func(f feature) g.Node {
				return components.Card("p-6",
					Div(Class("h-10 w-10 rounded-xl bg-primary/10 grid place-items-center"), components.Icon(f.icon, "h-5 w-5")),
					H3(Class("mt-2 font-semibold"), g.Text(f.title)),
					P(Class("mt-2 text-sm text-muted-foreground"), g.Text(f.desc)),
				)
			}),
		),
	)
}

func demo(m view.Model) g.Node {
	return Section(
		ID("demo"),
		Class("mx-auto max-w-7xl px-4 py-16"),
		Div(
			Class("grid lg:grid-cols-2 gap-8 items-center"),
			Div(
				Class("space-y-6"),
				H3(Class("text-2xl md:text-3xl font-bold"), g.Text("Live status view")),
				P(Class("text-muted-foreground"), g.Text("A compact snapshot of your day. Pending, To Verify, Completed charts update as your team closes tasks.")),
				Div(
					Class("grid grid-cols-2 gap-4"),
					components.Card("p-4",
						H4(Class("text-base font-semibold"), g.Text("Today")),
						Div(Class("pt-3 grid grid-cols-2 gap-3"), g.Map(m.Today, components.Stat)),
					),
					components.Card("p-4",
						H4(Class("text-base font-semibold"), g.Text("Pie breakdown")),
						Div(Class("pt-3"), components.PieChart(m.Pie, view.PieRadius)),
					),
				),
			),
			components.Card("p-6",
				H3(Class("font-semibold mb-4"), g.Text("Mini board (play with it)")),
				components.MiniBoard(m.Tabs, m.Columns),
			),
		),
	)
}

func pricingSection(m view.Model) g.Node {
	return Section(
		ID("pricing"),
		Class("mx-auto max-w-7xl px-4 py-16"),
		Div(
			Class("flex items-center justify-between"),
			H3(Class("text-2xl md:text-3xl font-bold"), g.Text("Simple pricing")),
			Div(
				Class("flex items-center gap-2"),
				Span(ID("annual-label"), Class("text-sm"), g.Text("Bill yearly")),
				billingSwitch(m.BillAnnually, m.ToggleHref),
			),
		),
		Div(
			Class("mt-8 grid md:grid-cols-3 gap-6"),
			g.Map(m.Plans, planCard),
		),
	)
}

// billingSwitch is a link to the page with the other billing period.
func billingSwitch(on bool, href string) g.Node {
	track := "relative inline-flex h-6 w-11 items-center rounded-full transition-colors"
	thumb := "inline-block h-5 w-5 rounded-full bg-background shadow transition-transform"
	if on {
		track += " bg-primary"
		thumb += " translate-x-5"
	} else {
		track += " bg-input"
		thumb += " translate-x-0.5"
	}
	return A(
		ID("annual"),
		Href(href),
		Class(track),
		g.Attr("role", "switch"),
		g.Attr("aria-checked", strconv.FormatBool(on)),
		g.Attr("aria-labelledby", "annual-label"),
		Span(Class(thumb)),
	)
}

func planCard(p pricing.Plan) g.Node {
	class := "p-6 relative"
	if p.Highlighted {
		class += " border-primary shadow-lg"
	}
	return components.Card(class,
		g.Attr("data-plan", p.ID.String()),
		g.If(p.Highlighted, Div(Class("absolute -top-3 left-4"), components.Badge("", g.Text("Most popular")))),
		H3(Class("font-semibold"), g.Text(p.Name)),
		P(Class("text-sm text-muted-foreground"), g.Text(p.Tagline)),
		Div(
			Class("mt-4 flex items-end gap-1"),
			g.Attr("data-price", p.PriceLabel()),
			Span(Class("text-4xl font-bold"), g.Text(p.Amount())),
			Span(Class("text-muted-foreground"), g.Text("/month")),
		),
		Ul(
			Class("mt-4 space-y-2 text-sm"),
			g.Map(p.Perks, func(perk string) g.Node {
				return Li(Class("flex items-center gap-2"), components.Icon(view.IconCheckCircle, "h-4 w-4"), g.Text(perk))
			}),
		),
		components.InertButton("w-full mt-6 rounded-xl px-4 py-2 bg-primary text-primary-foreground", g.Text(p.CTALabel)),
	)
}

var highlights = []string{"99.9% uptime", "Data export", "India‑first GST flows", "Works on mobile"}

func callToAction() g.Node {
	return Section(
		Class("mx-auto max-w-7xl px-4 pb-20"),
		Div(
			Class("rounded-3xl border border-primary/30 p-8 md:p-12 flex flex-col md:flex-row items-center justify-between gap-6"),
			Div(
				H3(Class("text-2xl md:text-3xl font-bold"), g.Text("Ready to put your tasks on autopilot?")),
				P(Class("text-muted-foreground mt-2"), g.Text("Invite your team and ship your first checklist in under 5 minutes.")),
				Div(
					Class("mt-4 flex gap-2"),
					Input(
						Type("email"),
						Placeholder("you@company.com"),
						Disabled(),
						g.Attr("data-unimplemented", "true"),
						Class("max-w-xs rounded-xl border px-3 py-2"),
					),
					components.InertButton("rounded-xl px-4 py-2 bg-primary text-primary-foreground", g.Text("Send invite")),
				),
			),
			Div(
				Class("grid grid-cols-2 gap-4"),
				g.Map(highlights, func(k string) g.Node {
					return Div(Class("rounded-2xl border p-4 text-sm flex items-center gap-2"), components.Icon(view.IconCheckCircle, "h-4 w-4"), g.Text(k))
				}),
			),
		),
	)
}

func footer(year int) g.Node {
	return Footer(
		Class("border-t"),
		Div(
			Class("mx-auto max-w-7xl px-4 py-8 text-sm text-muted-foreground flex flex-col md:flex-row items-center justify-between gap-4"),
			P(g.Textf("© %d Team for Tasks. All rights reserved.", year)),
			Div(
				Class("flex items-center gap-6"),
				A(Href("#"), Class("hover:text-foreground"), g.Text("Privacy")),
				A(Href("#"), Class("hover:text-foreground"), g.Text("Terms")),
				A(Href("#"), Class("hover:text-foreground"), g.Text("Support")),
			),
		),
	)
}
