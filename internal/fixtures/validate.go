package fixtures

func validateTeams(teams []Team) error {
	if len(teams) == 0 {
		return invalid("", "teams", "at least one team is required")
	}
	seen := make(map[string]struct{}, len(teams))
	for i, t := range teams {
		if t.Name == "" {
			return invalid("", "name", "team #%d has no name", i+1)
		}
		if _, dup := seen[t.Name]; dup {
			return invalid(t.Name, "name", "duplicate team name")
		}
		seen[t.Name] = struct{}{}

		if t.Progress < 0 || t.Progress > 100 {
			return invalid(t.Name, "progress", "%d is outside [0,100]", t.Progress)
		}
		if err := validateStats(t.Name, t.Stats); err != nil {
			return err
		}
		for j, task := range t.Tasks {
			if task.Title == "" {
				return invalid(t.Name, "tasks", "task #%d has no title", j+1)
			}
			if !task.Priority.Valid() {
				return invalid(t.Name, "tasks", "task %q has unknown priority %q", task.Title, task.Priority)
			}
		}
	}
	return nil
}

func validateStats(team string, s Stats) error {
	switch {
	case s.Total < 0:
		return invalid(team, "stats.total", "must not be negative")
	case s.Pending < 0:
		return invalid(team, "stats.pending", "must not be negative")
	case s.Verify < 0:
		return invalid(team, "stats.verify", "must not be negative")
	case s.Done < 0:
		return invalid(team, "stats.done", "must not be negative")
	}
	// Compared by subtraction: pending+verify+done may overflow int.
	if s.Pending > s.Total || s.Verify > s.Total-s.Pending || s.Done > s.Total-s.Pending-s.Verify {
		return invalid(team, "stats", "pending %d + verify %d + done %d exceeds total %d",
			s.Pending, s.Verify, s.Done, s.Total)
	}
	return nil
}

// validatePie checks an explicit pie block against the team aggregate.
func validatePie(explicit, aggregate []PieSlice) error {
	for _, s := range explicit {
		if s.Value < 0 {
			return invalid("", "pie", "slice %q has negative value", s.Name)
		}
	}
	if len(explicit) != len(aggregate) {
		return invalid("", "pie", "expected %d slices, got %d", len(aggregate), len(explicit))
	}
	for i := range aggregate {
		if explicit[i] != aggregate[i] {
			return invalid("", "pie", "slice %d is %s=%v, teams add up to %s=%v",
				i+1, explicit[i].Name, explicit[i].Value, aggregate[i].Name, aggregate[i].Value)
		}
	}
	return nil
}
