// Package fixtures holds the sample teams and chart data rendered by the
// landing page. Fixtures are decoded once, validated, and never mutated.
package fixtures

// Priority is the urgency of a sample task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single row of a team's task list. Due is display text only.
type Task struct {
	Title    string   `yaml:"title"`
	Priority Priority `yaml:"priority"`
	Due      string   `yaml:"due"`
}

// Stats is the task-count breakdown of a team.
type Stats struct {
	Total   int `yaml:"total"`
	Pending int `yaml:"pending"`
	Verify  int `yaml:"verify"`
	Done    int `yaml:"done"`
}

// Team is one sample team card.
type Team struct {
	Name     string `yaml:"name"`
	Progress int    `yaml:"progress"`
	Stats    Stats  `yaml:"stats"`
	Tasks    []Task `yaml:"tasks"`
}

func (t Team) clone() Team {
	if t.Tasks != nil {
		t.Tasks = append([]Task(nil), t.Tasks...)
	}
	return t
}

// Pie slice names, in chart order.
const (
	SlicePending   = "Pending"
	SliceVerify    = "To Verify"
	SliceCompleted = "Completed"
)

// PieSlice is one named value of the status breakdown chart.
type PieSlice struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// AggregatePie sums the pending, to-verify and completed counts of teams.
func AggregatePie(teams []Team) []PieSlice {
	var pending, verify, done float64
	for _, t := range teams {
		pending += float64(t.Stats.Pending)
		verify += float64(t.Stats.Verify)
		done += float64(t.Stats.Done)
	}
	return []PieSlice{
		{Name: SlicePending, Value: pending},
		{Name: SliceVerify, Value: verify},
		{Name: SliceCompleted, Value: done},
	}
}
