package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TabWidth is how many cells a tab takes on screen, matching lipgloss.
const TabWidth = 4

// Projection is the tail of the wrapped body that fits a viewport, plus the
// cursor position inside it. Column is 0-based, Row is 1-based from the top
// of the viewport.
type Projection struct {
	Text       string
	Column     int
	Row        int
	TotalLines int
	Skipped    int
}

// Project wraps body to cols cells and keeps the last lines that fit rows,
// leaving the last row free for the cursor. Trailing whitespace of body is
// re-appended verbatim after wrapping, so a run of spaces can reach past the
// right margin. Tabs are expanded to TabWidth spaces first.
func Project(body string, cols, rows int) Projection {
	if rows < 0 {
		rows = 0
	}
	body = ExpandTabs(body)
	wrapped := SplitLines(strings.Join(Wrap(body, cols), "\n"))
	total := len(wrapped)

	skip := 0
	if total > max(1, rows)-1 {
		skip = min(total, total-rows+1)
	}

	text := strings.Join(wrapped[skip:], "\n")
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	text += TrailingWhitespace(body)

	col, row := CursorPosition(text)
	return Projection{
		Text:       text,
		Column:     col,
		Row:        row,
		TotalLines: total,
		Skipped:    skip,
	}
}

// Wrap greedily fills each newline-separated paragraph of text to width
// terminal cells. Whitespace between words on the same line is kept as typed;
// whitespace at a line break is dropped. A word wider than width gets a line
// of its own and is never split. The result has at least one line.
func Wrap(text string, width int) []string {
	width = max(1, width)
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		out = append(out, wrapParagraph(para, width)...)
	}
	return out
}

// CursorPosition returns the 0-based column and 1-based row just past the
// end of text, counting runes rather than bytes.
func CursorPosition(text string) (int, int) {
	lines := SplitLines(text)
	if strings.HasSuffix(text, "\n") {
		return 0, len(lines) + 1
	}
	last := ""
	if len(lines) > 0 {
		last = lines[len(lines)-1]
	}
	return utf8.RuneCountInString(last), max(1, len(lines))
}

// SplitLines splits on newlines; a final newline does not open another line
// and the empty string has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ExpandTabs replaces each tab with TabWidth spaces so that widths and
// cursor columns agree with what the terminal draws.
func ExpandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", TabWidth))
}

// TrailingWhitespace is the run of whitespace that ends text.
func TrailingWhitespace(text string) string {
	return text[len(strings.TrimRightFunc(text, unicode.IsSpace)):]
}

type fragment struct {
	word  string
	space string
}

func wrapParagraph(para string, width int) []string {
	frags := splitFragments(para)
	if len(frags) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	line := strings.Builder{}
	lineWidth := 0
	pending := ""
	for i, f := range frags {
		wordWidth := runewidth.StringWidth(f.word)
		if i > 0 {
			spaceWidth := runewidth.StringWidth(pending)
			if lineWidth+spaceWidth+wordWidth > width {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			} else {
				line.WriteString(pending)
				lineWidth += spaceWidth
			}
		}
		line.WriteString(f.word)
		lineWidth += wordWidth
		pending = f.space
	}
	return append(lines, line.String())
}

// splitFragments cuts para into words, each carrying the whitespace that
// follows it. Leading whitespace becomes an empty word so indentation on the
// first line survives.
func splitFragments(para string) []fragment {
	var out []fragment
	for i := 0; i < len(para); {
		j := scan(para, i, false)
		k := scan(para, j, true)
		out = append(out, fragment{word: para[i:j], space: para[j:k]})
		i = k
	}
	return out
}

func scan(s string, from int, space bool) int {
	for from < len(s) {
		r, size := utf8.DecodeRuneInString(s[from:])
		if unicode.IsSpace(r) != space {
			return from
		}
		from += size
	}
	return from
}
