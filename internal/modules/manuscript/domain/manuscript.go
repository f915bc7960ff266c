package domain

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one session as it is appended to the output file.
type Entry struct {
	Title string
	Body  string
}

// Render produces the title line (when there is a title), the body and one
// blank line.
func (e Entry) Render() string {
	var b strings.Builder
	if e.Title != "" {
		b.WriteString(e.Title)
		b.WriteByte('\n')
	}
	b.WriteString(e.Body)
	b.WriteString("\n\n")
	return b.String()
}

func (e Entry) Validate() error {
	if e.Body == "" {
		return fmt.Errorf("entry body is empty")
	}
	return nil
}

// Record is a row of the session history.
type Record struct {
	ID            string
	Title         string
	Path          string
	StartedAt     time.Time
	FinishedAt    time.Time
	Words         int
	Active        time.Duration
	WordGoal      int
	TimeGoal      time.Duration
	GoalsAchieved bool
	Resets        int
}
