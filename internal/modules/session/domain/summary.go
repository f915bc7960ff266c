package domain

import "time"

// Summary is what remains of a session once the program ends.
type Summary struct {
	Title         string
	Body          string
	StartedAt     time.Time
	FinishedAt    time.Time
	Words         int
	Active        time.Duration
	WordGoal      int
	TimeGoal      time.Duration
	GoalsAchieved bool
	Resets        int
}

func (s Session) Summarize(now time.Time) Summary {
	report := s.Goals(now)
	return Summary{
		Title:         s.Title,
		Body:          s.Body,
		StartedAt:     s.StartedAt,
		FinishedAt:    now,
		Words:         report.Words,
		Active:        report.Elapsed,
		WordGoal:      s.Settings.WordGoal,
		TimeGoal:      s.Settings.TimeGoal,
		GoalsAchieved: report.Achieved(),
		Resets:        s.Resets,
	}
}
