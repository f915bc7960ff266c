package dto

import "time"

type DestinationInput struct {
	StartedAt time.Time
}

type SaveInput struct {
	Title           string
	Body            string
	StartedAt       time.Time
	FinishedAt      time.Time
	Words           int
	ActiveSeconds   int
	WordGoal        int
	TimeGoalSeconds int
	GoalsAchieved   bool
	Resets          int
}

type SaveOutput struct {
	Path      string
	Bytes     int
	HistoryID string
}

type HistoryInput struct {
	Limit int
}

type HistoryOutput struct {
	ID              string
	Title           string
	Path            string
	StartedAt       time.Time
	FinishedAt      time.Time
	Words           int
	ActiveSeconds   int
	WordGoal        int
	TimeGoalSeconds int
	GoalsAchieved   bool
	Resets          int
}
