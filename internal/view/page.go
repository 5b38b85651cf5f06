package view

import (
	"fmt"
	"net/url"
	"time"

	"teamfortasks/internal/board"
	"teamfortasks/internal/chart"
	"teamfortasks/internal/fixtures"
	"teamfortasks/internal/pricing"
)

// Query parameters carrying the page state.
const (
	ParamBilling = "billing"
	ParamTeam    = "team"
)

// PieRadius is the outer radius of the demo pie, in SVG units.
const PieRadius = 70

// Page owns the mutable view state: the billing period and the active
// mini-board tab. A Page is built per render and is not safe for concurrent
// use.
type Page struct {
	catalog *fixtures.Catalog
	billing pricing.BillingPeriod
	board   *board.Board
}

// NewPage returns a page in its initial state: annual billing, first team.
func NewPage(c *fixtures.Catalog) (*Page, error) {
	b, err := board.New(c.Teams())
	if err != nil {
		return nil, err
	}
	return &Page{catalog: c, billing: pricing.Annual, board: b}, nil
}

// Billing returns the selected billing period.
func (p *Page) Billing() pricing.BillingPeriod { return p.billing }

// SetBilling selects a billing period.
func (p *Page) SetBilling(b pricing.BillingPeriod) { p.billing = b }

// ToggleBilling flips the "Bill yearly" switch.
func (p *Page) ToggleBilling() { p.billing = p.billing.Toggle() }

// ActiveTeam returns the selected mini-board tab.
func (p *Page) ActiveTeam() string { return p.board.Active() }

// SelectTeam switches the mini-board tab.
func (p *Page) SelectTeam(name string) error { return p.board.Select(name) }

// Apply restores state from query values. Missing values keep the current
// state; invalid ones are reported and leave the page untouched.
func (p *Page) Apply(q url.Values) error {
	billing := p.billing
	if q.Has(ParamBilling) {
		var err error
		if billing, err = pricing.ParseBillingPeriod(q.Get(ParamBilling)); err != nil {
			return err
		}
	}
	if q.Has(ParamTeam) {
		if err := p.board.Select(q.Get(ParamTeam)); err != nil {
			return err
		}
	}
	p.billing = billing
	return nil
}

// Href links to the page with the given state, dropping default values.
func (p *Page) Href(billing pricing.BillingPeriod, team, anchor string) string {
	q := url.Values{}
	if billing != pricing.Annual {
		q.Set(ParamBilling, billing.String())
	}
	if tabs := p.board.Tabs(); team != "" && team != tabs[0] {
		q.Set(ParamTeam, team)
	}
	href := "/"
	if len(q) > 0 {
		href += "?" + q.Encode()
	}
	if anchor != "" {
		href += "#" + anchor
	}
	return href
}

// Tab is one mini-board tab trigger.
type Tab struct {
	Name   string
	Href   string
	Active bool
}

// Model is everything the landing page template renders.
type Model struct {
	Year int

	Teams []TeamSummary

	Today   []StatTile
	Pie     []chart.Arc
	Tabs    []Tab
	Columns []board.Column

	Billing      pricing.BillingPeriod
	BillAnnually bool
	ToggleHref   string
	Plans        []pricing.Plan
}

// Model renders the current state into template values.
func (p *Page) Model(now time.Time) Model {
	teams := p.catalog.Teams()
	summaries := make([]TeamSummary, len(teams))
	for i, t := range teams {
		summaries[i] = Summarize(t)
	}

	pie := p.catalog.Pie()
	today := make([]StatTile, 0, 2)
	for _, s := range pie {
		switch s.Name {
		case fixtures.SlicePending:
			today = append(today, StatTile{Label: s.Name, Value: int(s.Value), Icon: IconClock})
		case fixtures.SliceCompleted:
			today = append(today, StatTile{Label: s.Name, Value: int(s.Value), Icon: IconCheckCircle})
		}
	}

	active := p.board.Active()
	tabs := make([]Tab, 0, len(teams))
	for _, name := range p.board.Tabs() {
		tabs = append(tabs, Tab{
			Name:   name,
			Href:   p.Href(p.billing, name, "demo"),
			Active: name == active,
		})
	}

	return Model{
		Year:         now.Year(),
		Teams:        summaries,
		Today:        today,
		Pie:          chart.Pie(pie, chart.DefaultPalette, PieRadius),
		Tabs:         tabs,
		Columns:      p.board.Columns(),
		Billing:      p.billing,
		BillAnnually: p.billing == pricing.Annual,
		ToggleHref:   p.Href(p.billing.Toggle(), active, "pricing"),
		Plans:        pricing.Plans(p.billing),
	}
}

func (p *Page) String() string {
	return fmt.Sprintf("page(billing=%s team=%s)", p.billing, p.board.Active())
}
