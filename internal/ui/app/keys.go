package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	sessiondto "writingbuddy/internal/modules/session/dto"
)

// keyMap holds the only keys with a meaning besides typing. ctrl+c is not
// bound: the session ends through Esc alone.
type keyMap struct {
	Enter     key.Binding
	Backspace key.Binding
	Escape    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Enter:     key.NewBinding(key.WithKeys("enter")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Escape:    key.NewBinding(key.WithKeys("esc")),
	}
}

// keyAction is one step for the session: a typed rune, or a named key
// when kind is not KeyCharacter.
type keyAction struct {
	kind string
	r    rune
}

func (k keyMap) actions(msg tea.KeyMsg) []keyAction {
	switch {
	case msg.Type == tea.KeyRunes:
		return typed(msg.Runes)
	case msg.Type == tea.KeySpace:
		return []keyAction{{kind: sessiondto.KeyCharacter, r: ' '}}
	case key.Matches(msg, k.Enter):
		return []keyAction{{kind: sessiondto.KeyEnter}}
	case key.Matches(msg, k.Backspace):
		return []keyAction{{kind: sessiondto.KeyBackspace}}
	case key.Matches(msg, k.Escape):
		return []keyAction{{kind: sessiondto.KeyEscape}}
	}
	return []keyAction{{kind: msg.String()}}
}

// typed splits a run of runes, usually a paste, into steps. A line break
// inside the run is an Enter, whether it arrives as "\n", "\r\n" or "\r".
func typed(runes []rune) []keyAction {
	out := make([]keyAction, 0, len(runes))
	for i, r := range runes {
		switch r {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			out = append(out, keyAction{kind: sessiondto.KeyEnter})
		case '\n':
			out = append(out, keyAction{kind: sessiondto.KeyEnter})
		default:
			out = append(out, keyAction{kind: sessiondto.KeyCharacter, r: r})
		}
	}
	return out
}

// instructionKeys returns the help bindings for the current frame.
func instructionKeys(frame sessiondto.FrameOutput, text messages) []key.Binding {
	esc := text.Message("key-esc")
	if frame.Mode == "title" {
		leave := text.Message("exit-no-save")
		if frame.HasText {
			leave = text.Message("exit-save")
		}
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp(esc, leave)),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp(text.Message("key-enter"), text.Message("start-writing"))),
		}
	}
	if !frame.CanStopWriting {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp(esc, text.Message("stop-writing"))),
	}
}
