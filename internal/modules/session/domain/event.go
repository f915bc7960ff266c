package domain

// Mode is the interaction mode of a session. There is no third mode.
type Mode int

const (
	ModeTitleEntry Mode = iota
	ModeWriting
)

func (m Mode) String() string {
	switch m {
	case ModeTitleEntry:
		return "title"
	case ModeWriting:
		return "writing"
	default:
		return "unknown"
	}
}

type EventKind int

const (
	EventOther EventKind = iota
	EventCharacter
	EventEnter
	EventBackspace
	EventEscape
)

// Event is a discrete key event. Rune is only meaningful for EventCharacter.
type Event struct {
	Kind EventKind
	Rune rune
}

func Character(r rune) Event { return Event{Kind: EventCharacter, Rune: r} }

func Enter() Event { return Event{Kind: EventEnter} }

func Backspace() Event { return Event{Kind: EventBackspace} }

func Escape() Event { return Event{Kind: EventEscape} }

func Other() Event { return Event{Kind: EventOther} }

// Effect reports what Apply did with an event.
type Effect int

const (
	EffectIgnored Effect = iota
	EffectUpdated
	EffectStartedWriting
	EffectStoppedWriting
	EffectBlocked
	EffectQuit
)

func (e Effect) String() string {
	switch e {
	case EffectIgnored:
		return "ignored"
	case EffectUpdated:
		return "updated"
	case EffectStartedWriting:
		return "started-writing"
	case EffectStoppedWriting:
		return "stopped-writing"
	case EffectBlocked:
		return "blocked"
	case EffectQuit:
		return "quit"
	default:
		return "unknown"
	}
}
