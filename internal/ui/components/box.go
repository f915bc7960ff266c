package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"writingbuddy/internal/ui/theme"
)

// Box is a bordered panel with its title set into the top border. Width and
// Height are outer sizes including the border.
type Box struct {
	Title  string
	Body   string
	Width  int
	Height int
	Color  lipgloss.TerminalColor

	cursor    bool
	cursorCol int
	cursorRow int
}

// WithCursor draws a block cursor at a 0-based rune column and a 1-based row
// of the body.
func (b Box) WithCursor(column, row int) Box {
	b.cursor = true
	b.cursorCol = column
	b.cursorRow = row
	return b
}

func (b Box) InnerWidth() int { return max(2, b.Width) - 2 }

func (b Box) InnerHeight() int { return max(2, b.Height) - 2 }

func (b Box) View() string {
	color := b.Color
	if color == nil {
		color = lipgloss.NoColor{}
	}
	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(color)
	text := lipgloss.NewStyle().Foreground(color)
	innerW := b.InnerWidth()

	title := truncate.String(b.Title, uint(innerW))
	fill := innerW - runewidth.StringWidth(title)

	var out strings.Builder
	out.WriteString(edge.Render(border.TopLeft))
	out.WriteString(theme.Title.Foreground(color).Render(title))
	out.WriteString(edge.Render(strings.Repeat(border.Top, fill) + border.TopRight))

	lines := strings.Split(b.Body, "\n")
	for row := 1; row <= b.InnerHeight(); row++ {
		line := ""
		if row <= len(lines) {
			line = lines[row-1]
		}
		var content string
		if b.cursor && row == b.cursorRow {
			content = withCursor(line, b.cursorCol, text)
		} else {
			content = text.Render(line)
		}
		content = truncate.String(content, uint(innerW))
		pad := innerW - lipgloss.Width(content)
		out.WriteByte('\n')
		out.WriteString(edge.Render(border.Left))
		out.WriteString(content)
		out.WriteString(strings.Repeat(" ", max(0, pad)))
		out.WriteString(edge.Render(border.Right))
	}

	out.WriteByte('\n')
	out.WriteString(edge.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerW) + border.BottomRight))
	return out.String()
}

func withCursor(line string, column int, style lipgloss.Style) string {
	runes := []rune(line)
	for len(runes) <= column {
		runes = append(runes, ' ')
	}
	return style.Render(string(runes[:column])) +
		theme.Cursor.Render(string(runes[column])) +
		style.Render(string(runes[column+1:]))
}

// SplitWidth divides total cells into two halves, the right one taking the
// odd cell.
func SplitWidth(total int) (int, int) {
	left := total / 2
	return left, total - left
}
