// Package view shapes fixtures, pricing and board state into the values the
// landing page templates render.
package view

import (
	"teamfortasks/internal/fixtures"
)

// Icon selects the glyph drawn next to a stat or feature.
type Icon int

const (
	IconList Icon = iota
	IconClock
	IconBadgeCheck
	IconCheckCircle
	IconSparkles
	IconUsers
	IconBarChart
	IconLayout
	IconShield
	IconZap
	IconPlay
	IconArrowRight
)

// StatTile is a labeled metric, e.g. "Pending: 18".
type StatTile struct {
	Label string
	Value int
	Icon  Icon
}

// TaskRow is one line of a team card task list. Its "Open" action is inert.
type TaskRow struct {
	Title    string
	Due      string
	Priority fixtures.Priority
}

// Meta is the secondary line under the title, e.g. "Overdue • medium priority".
func (r TaskRow) Meta() string {
	return r.Due + " • " + string(r.Priority) + " priority"
}

// TeamSummary is the content of one team card.
type TeamSummary struct {
	Name     string
	Progress int
	Stats    []StatTile
	Rows     []TaskRow
}

// Summarize builds a team card. Stats are passed through as given.
func Summarize(t fixtures.Team) TeamSummary {
	rows := make([]TaskRow, len(t.Tasks))
	for i, task := range t.Tasks {
		rows[i] = TaskRow{Title: task.Title, Due: task.Due, Priority: task.Priority}
	}
	return TeamSummary{
		Name:     t.Name,
		Progress: t.Progress,
		Stats: []StatTile{
			{Label: "Total", Value: t.Stats.Total, Icon: IconList},
			{Label: "Pending", Value: t.Stats.Pending, Icon: IconClock},
			{Label: "To Verify", Value: t.Stats.Verify, Icon: IconBadgeCheck},
			{Label: "Completed", Value: t.Stats.Done, Icon: IconCheckCircle},
		},
		Rows: rows,
	}
}
