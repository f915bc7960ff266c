package domain

import (
	"fmt"
	"strings"
	"time"
)

type GoalStatus int

const (
	GoalInactive GoalStatus = iota
	GoalActive
	GoalDone
)

func (g GoalStatus) String() string {
	switch g {
	case GoalActive:
		return "active"
	case GoalDone:
		return "done"
	default:
		return "inactive"
	}
}

// GoalReport is a read-only evaluation of the goals against the current
// buffer and elapsed writing time.
type GoalReport struct {
	Words        int
	WordGoal     int
	Elapsed      time.Duration
	TimeGoal     time.Duration
	WordAchieved bool
	TimeAchieved bool
	WordStatus   GoalStatus
	TimeStatus   GoalStatus
}

// WordCount counts whitespace-delimited tokens.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

func EvaluateGoals(body string, elapsed time.Duration, settings Settings) GoalReport {
	settings = settings.Normalize()
	report := GoalReport{
		Words:        WordCount(body),
		WordGoal:     settings.WordGoal,
		Elapsed:      elapsed,
		TimeGoal:     settings.TimeGoal,
		WordAchieved: true,
		TimeAchieved: true,
	}
	if settings.WordGoal > 0 {
		report.WordAchieved = report.Words >= settings.WordGoal
		report.WordStatus = statusFor(report.WordAchieved)
	}
	if settings.TimeGoal > 0 {
		report.TimeAchieved = elapsed >= settings.TimeGoal
		report.TimeStatus = statusFor(report.TimeAchieved)
	}
	return report
}

func (r GoalReport) Achieved() bool {
	return r.WordAchieved && r.TimeAchieved
}

// WordProgress renders "12" or "12/500".
func (r GoalReport) WordProgress() string {
	if r.WordGoal > 0 {
		return fmt.Sprintf("%d/%d", r.Words, r.WordGoal)
	}
	return fmt.Sprintf("%d", r.Words)
}

// TimeProgress renders "30 s" or "30 s/600 s" in whole seconds.
func (r GoalReport) TimeProgress() string {
	secs := int64(r.Elapsed / time.Second)
	if r.TimeGoal > 0 {
		return fmt.Sprintf("%d s/%d s", secs, int64(r.TimeGoal/time.Second))
	}
	return fmt.Sprintf("%d s", secs)
}

func statusFor(achieved bool) GoalStatus {
	if achieved {
		return GoalDone
	}
	return GoalActive
}
