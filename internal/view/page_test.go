package view

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"teamfortasks/internal/board"
	"teamfortasks/internal/fixtures"
	"teamfortasks/internal/pricing"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newPage(t *testing.T) *Page {
	t.Helper()
	c, err := fixtures.Default()
	require.NoError(t, err)
	p, err := NewPage(c)
	require.NoError(t, err)
	return p
}

func TestInitialLoadShowsAnnualPrices(t *testing.T) {
	m := newPage(t).Model(now)

	require.True(t, m.BillAnnually)
	require.Equal(t, "₹199/month", m.Plans[1].PriceLabel())
	require.Equal(t, "₹0/month", m.Plans[0].PriceLabel())
	require.Equal(t, 2026, m.Year)
}

func TestToggleBilling(t *testing.T) {
	p := newPage(t)

	p.ToggleBilling()
	m := p.Model(now)
	require.False(t, m.BillAnnually)
	require.Equal(t, "₹249/month", m.Plans[1].PriceLabel())
	require.Equal(t, "₹0/month", m.Plans[0].PriceLabel())

	p.ToggleBilling()
	require.Equal(t, "₹199/month", p.Model(now).Plans[1].PriceLabel())
}

func TestSelectSecondTeamTab(t *testing.T) {
	p := newPage(t)
	require.NoError(t, p.SelectTeam("Kanhu"))

	m := p.Model(now)
	want := []fixtures.Task{
		{Title: "Vendor follow-up", Priority: fixtures.PriorityMedium, Due: "Overdue"},
		{Title: "Create display", Priority: fixtures.PriorityHigh, Due: "Today"},
	}
	if diff := cmp.Diff(want, m.Columns[0].Tasks); diff != "" {
		t.Errorf("pending column mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, board.ColumnVerify, m.Columns[1].Name)
	require.True(t, m.Columns[1].Empty())
	require.True(t, m.Columns[2].Empty())

	var active []string
	for _, tab := range m.Tabs {
		if tab.Active {
			active = append(active, tab.Name)
		}
	}
	require.Equal(t, []string{"Kanhu"}, active)
}

func TestPieNeverChanges(t *testing.T) {
	p := newPage(t)
	values := func() []float64 {
		var v []float64
		for _, a := range p.Model(now).Pie {
			v = append(v, a.Value)
		}
		return v
	}

	require.Equal(t, []float64{18, 0, 3}, values())
	p.ToggleBilling()
	require.NoError(t, p.SelectTeam("dj"))
	require.Equal(t, []float64{18, 0, 3}, values())
}

func TestTodayStats(t *testing.T) {
	m := newPage(t).Model(now)
	require.Equal(t, []StatTile{
		{Label: "Pending", Value: 18, Icon: IconClock},
		{Label: "Completed", Value: 3, Icon: IconCheckCircle},
	}, m.Today)
}

func TestApply(t *testing.T) {
	p := newPage(t)
	require.NoError(t, p.Apply(url.Values{"billing": {"monthly"}, "team": {"dj"}}))
	require.Equal(t, pricing.Monthly, p.Billing())
	require.Equal(t, "dj", p.ActiveTeam())

	require.NoError(t, p.Apply(url.Values{}))
	require.Equal(t, pricing.Monthly, p.Billing())
	require.Equal(t, "dj", p.ActiveTeam())
}

func TestApplyRejectsInvalidState(t *testing.T) {
	p := newPage(t)

	err := p.Apply(url.Values{"billing": {"monthly"}, "team": {"nobody"}})
	require.ErrorIs(t, err, board.ErrUnknownTeam)
	require.Equal(t, pricing.Annual, p.Billing())
	require.Equal(t, "store", p.ActiveTeam())

	err = p.Apply(url.Values{"billing": {"weekly"}, "team": {"dj"}})
	require.ErrorIs(t, err, pricing.ErrUnknownPeriod)
	require.Equal(t, "store", p.ActiveTeam())
}

func TestHrefs(t *testing.T) {
	p := newPage(t)
	m := p.Model(now)
	require.Equal(t, "/?billing=monthly#pricing", m.ToggleHref)
	require.Equal(t, "/#demo", m.Tabs[0].Href)
	require.Equal(t, "/?team=Kanhu#demo", m.Tabs[1].Href)

	require.NoError(t, p.Apply(url.Values{"billing": {"monthly"}, "team": {"dj"}}))
	m = p.Model(now)
	require.Equal(t, "/?team=dj#pricing", m.ToggleHref)
	require.Equal(t, "/?billing=monthly#demo", m.Tabs[0].Href)
	require.Equal(t, "/?billing=monthly&team=Kanhu#demo", m.Tabs[1].Href)
}

func TestSummarizePassesStatsThrough(t *testing.T) {
	s := Summarize(fixtures.Team{
		Name:     "odd",
		Progress: 10,
		Stats:    fixtures.Stats{Total: 1, Pending: 5, Verify: 5, Done: 5},
		Tasks:    []fixtures.Task{{Title: "a", Priority: fixtures.PriorityLow, Due: "Today"}},
	})

	var labels []string
	var values []int
	for _, st := range s.Stats {
		labels = append(labels, st.Label)
		values = append(values, st.Value)
	}
	require.Equal(t, []string{"Total", "Pending", "To Verify", "Completed"}, labels)
	require.Equal(t, []int{1, 5, 5, 5}, values)
	require.Equal(t, "Today • low priority", s.Rows[0].Meta())
}
