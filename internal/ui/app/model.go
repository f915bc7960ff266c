package app

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "writingbuddy/internal/modules/session/dto"
	"writingbuddy/internal/ui/components"
	"writingbuddy/internal/ui/theme"
)

// TickInterval bounds how late the idle reset and the clock display can be.
const TickInterval = 200 * time.Millisecond

const (
	margin     = 2
	fixedBoxH  = 3
	fixedBoxes = 3
)

type sessionPort interface {
	Type(r rune) sessiondto.KeyOutput
	Press(kind string) sessiondto.KeyOutput
	Tick() sessiondto.TickOutput
	Frame(columns, rows int) sessiondto.FrameOutput
}

type messages interface {
	Message(key string) string
}

type tickMsg time.Time

// Model is the root Bubble Tea model. It owns no session state: every key
// and tick goes to the session port, and every frame is read back from it.
type Model struct {
	session sessionPort
	text    messages
	keys    keyMap
	help    help.Model
	width   int
	height  int
	done    bool
}

func NewModel(session sessionPort, text messages) Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Passive)
	h.Styles.ShortSeparator = theme.Muted
	return Model{
		session: session,
		text:    text,
		keys:    defaultKeys(),
		help:    h,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.layout().innerWidth - 2
		return m, nil

	case tickMsg:
		m.session.Tick()
		return m, tick()

	case tea.KeyMsg:
		for _, act := range m.keys.actions(msg) {
			var out sessiondto.KeyOutput
			if act.kind == sessiondto.KeyCharacter {
				out = m.session.Type(act.r)
			} else {
				out = m.session.Press(act.kind)
			}
			if out.Quit {
				m.done = true
				return m, tea.Quit
			}
		}
		return m, nil
	}
	return m, nil
}

type layout struct {
	innerWidth  int
	bodyHeight  int
	textColumns int
	textRows    int
}

func computeLayout(width, height int) layout {
	bodyH := max(1, height-2*margin-fixedBoxes*fixedBoxH)
	return layout{
		innerWidth:  max(2, width-2*margin),
		bodyHeight:  bodyH,
		textColumns: max(6, width) - 6,
		textRows:    max(2, bodyH) - 2,
	}
}

func (m Model) layout() layout { return computeLayout(m.width, m.height) }

func (m Model) View() string {
	if m.done || m.width == 0 {
		return ""
	}
	l := m.layout()
	frame := m.session.Frame(l.textColumns, l.textRows)
	writing := frame.Mode == "writing"

	instruction := m.text.Message("keep-writing")
	if bindings := instructionKeys(frame, m.text); len(bindings) > 0 {
		instruction = m.help.ShortHelpView(bindings)
	}
	instructions := components.Box{
		Title:  m.text.Message("instructions"),
		Body:   instruction,
		Width:  l.innerWidth,
		Height: fixedBoxH,
		Color:  theme.Passive,
	}

	title := components.Box{
		Title:  m.text.Message("title"),
		Body:   frame.Title,
		Width:  l.innerWidth,
		Height: fixedBoxH,
		Color:  theme.Active,
	}
	body := components.Box{
		Title:  m.text.Message("text"),
		Body:   frame.Text,
		Width:  l.innerWidth,
		Height: l.bodyHeight,
		Color:  theme.Passive,
	}
	if writing {
		title.Color = theme.Passive
		body.Color = theme.ForUrgency(frame.Urgency)
		body = body.WithCursor(frame.CursorColumn, frame.CursorRow)
	} else {
		title = title.WithCursor(utf8.RuneCountInString(frame.Title), 1)
	}

	leftW, rightW := components.SplitWidth(l.innerWidth)
	words := components.Box{
		Title:  m.text.Message("word-count"),
		Body:   frame.Words,
		Width:  leftW,
		Height: fixedBoxH,
		Color:  theme.ForWordGoal(frame.WordStatus),
	}
	elapsed := components.Box{
		Title:  m.text.Message("time"),
		Body:   frame.Time,
		Width:  rightW,
		Height: fixedBoxH,
		Color:  theme.ForTimeGoal(frame.TimeStatus),
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		instructions.View(),
		title.View(),
		body.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, words.View(), elapsed.View()),
	)
	return theme.App.Render(screen)
}
