// Package board implements the tabbed mini-board of the live demo.
package board

import (
	"errors"
	"fmt"

	"teamfortasks/internal/fixtures"
)

var (
	// ErrNoTeams is returned when a board is built without any team.
	ErrNoTeams = errors.New("board needs at least one team")
	// ErrUnknownTeam is returned when selecting a tab that does not exist.
	ErrUnknownTeam = errors.New("unknown team")
)

// Column names, in display order.
const (
	ColumnPending   = "Pending"
	ColumnVerify    = "To Verify"
	ColumnCompleted = "Completed"
)

// Column is one status lane of the board.
type Column struct {
	Name  string
	Tasks []fixtures.Task
}

// Count is the number shown in the column badge.
func (c Column) Count() int { return len(c.Tasks) }

// Empty reports whether the column renders the "No items" placeholder.
func (c Column) Empty() bool { return len(c.Tasks) == 0 }

// Board holds one tab per team and the active selection.
type Board struct {
	teams  []fixtures.Team
	active int
}

// New returns a board whose active tab is the first team.
func New(teams []fixtures.Team) (*Board, error) {
	if len(teams) == 0 {
		return nil, ErrNoTeams
	}
	return &Board{teams: teams}, nil
}

// Tabs returns the selectable team names in fixture order.
func (b *Board) Tabs() []string {
	tabs := make([]string, len(b.teams))
	for i, t := range b.teams {
		tabs[i] = t.Name
	}
	return tabs
}

// Active returns the name of the selected team.
func (b *Board) Active() string {
	return b.teams[b.active].Name
}

// Select makes name the active tab. Unknown names leave the selection as is.
func (b *Board) Select(name string) error {
	for i, t := range b.teams {
		if t.Name == name {
			b.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTeam, name)
}

// Columns returns the lanes for the active team. Only Pending is populated;
// the sample data has nothing awaiting verification or completed.
func (b *Board) Columns() []Column {
	tasks := b.teams[b.active].Tasks
	return []Column{
		{Name: ColumnPending, Tasks: append([]fixtures.Task(nil), tasks...)},
		{Name: ColumnVerify},
		{Name: ColumnCompleted},
	}
}
