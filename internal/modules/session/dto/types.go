package dto

import "time"

// Key kinds accepted by KeyInput. Anything else is ignored.
const (
	KeyCharacter = "character"
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyEscape    = "escape"
)

type KeyInput struct {
	Kind string
	Rune rune
}

type KeyOutput struct {
	Effect  string
	Mode    string
	Quit    bool
	Blocked bool
}

type TickOutput struct {
	Reset          bool
	DiscardedWords int
}

type FrameInput struct {
	Columns int
	Rows    int
}

// FrameOutput is everything the terminal UI needs to draw one frame.
type FrameOutput struct {
	Mode           string
	Title          string
	Text           string
	CursorColumn   int
	CursorRow      int
	HasText        bool
	StrictMode     bool
	CanStopWriting bool
	Urgency        string
	Words          string
	WordStatus     string
	Time           string
	TimeStatus     string
}

// PendingOutput tells whether Finish would store anything, and where.
type PendingOutput struct {
	HasText bool
	Path    string
}

type FinishOutput struct {
	Stored        bool
	Path          string
	Title         string
	Words         int
	ActiveSeconds int
	Resets        int
	StartedAt     time.Time
	FinishedAt    time.Time
}
