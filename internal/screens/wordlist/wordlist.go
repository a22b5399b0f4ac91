package wordlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/vocab"
)

type rowKind int

const (
	rowTableHeader rowKind = iota
	rowWord
)

type row struct {
	kind  rowKind
	table *vocab.Table
	word  *vocab.Row
}

// WordListScreen lists every row of the given tables, grouped by table,
// with the learner's accuracy and flashcard status.
type WordListScreen struct {
	tables       []vocab.Table
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*WordListScreen)(nil)
var _ screen.KeyHintProvider = (*WordListScreen)(nil)

func New(tables []vocab.Table) *WordListScreen {
	s := &WordListScreen{tables: tables}
	for i := range s.tables {
		t := &s.tables[i]
		s.rows = append(s.rows, row{kind: rowTableHeader, table: t})
		for j := range t.Rows {
			s.rows = append(s.rows, row{kind: rowWord, table: t, word: &t.Rows[j]})
		}
	}

	for i, r := range s.rows {
		if r.kind == rowWord {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *WordListScreen) Init() tea.Cmd {
	return nil
}

func (s *WordListScreen) Title() string {
	return "Words"
}

func (s *WordListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Table"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextTable()
		case "shift+tab":
			s.prevTable()
		case "enter":
			return s, s.selectWord()
		}
	}
	return s, nil
}

// moveCursor moves by delta, skipping table headers.
func (s *WordListScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowWord {
			s.cursor = next
			return
		}
	}
}

func (s *WordListScreen) currentTable() *vocab.Table {
	if s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].table
}

// nextTable jumps to the first word of the next table that has any.
func (s *WordListScreen) nextTable() {
	cur := s.currentTable()
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowWord && s.rows[i].table != cur {
			s.cursor = i
			return
		}
	}
}

// prevTable jumps to the first word of the previous table that has any.
func (s *WordListScreen) prevTable() {
	cur := s.currentTable()
	var prev *vocab.Table
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowWord && s.rows[i].table != cur {
			prev = s.rows[i].table
			break
		}
	}
	if prev == nil {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowWord && r.table == prev {
			s.cursor = i
			return
		}
	}
}

func (s *WordListScreen) selectWord() tea.Cmd {
	if s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowWord {
		return nil
	}
	r := s.rows[s.cursor]
	detail := newWordDetail(r.table, *r.word)
	return func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
}

func (s *WordListScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowTableHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *WordListScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No tables yet.")
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowTableHeader:
			lines = append(lines, renderTableHeader(r.table, width))
		case rowWord:
			lines = append(lines, renderWordRow(r, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

func renderTableHeader(t *vocab.Table, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("%s  (%d)", strings.ToUpper(t.Name), len(t.Rows)))
}

// Label joins the first two column values of a row.
func Label(t *vocab.Table, r vocab.Row) string {
	var ids []string
	for i, c := range t.Columns {
		if i == 2 {
			break
		}
		ids = append(ids, c.ID)
	}
	vals := r.Values(ids)
	if len(vals) == 0 {
		return r.ID
	}
	return strings.Join(vals, " · ")
}

// Accuracy formats the quiz accuracy of a row, or "—" if never answered.
func Accuracy(st vocab.RowStats) string {
	n := st.Correct + st.Incorrect
	if n == 0 {
		return "—"
	}
	return fmt.Sprintf("%.0f%%", float64(st.Correct)/float64(n)*100)
}

func renderWordRow(r row, selected bool, width int) string {
	const (
		indent      = 4
		cursorWidth = 2
		accWidth    = 5
		statusWidth = 8
		spacing     = 4
	)
	nameWidth := max(width-indent-cursorWidth-accWidth-statusWidth-spacing, 10)

	name := []rune(Label(r.table, *r.word))
	if len(name) > nameWidth {
		name = append(name[:nameWidth-1], '…')
	}

	status := r.word.Stats.FlashcardStatus
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle := lipgloss.NewStyle().Foreground(theme.RatingColor(status))
	accStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	cursor := "  "
	if selected {
		cursor = "▸ "
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		accStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	}

	return fmt.Sprintf("    %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, string(name))),
		accStyle.Render(fmt.Sprintf("%*s", accWidth, Accuracy(r.word.Stats))),
		statusStyle.Render(fmt.Sprintf("%*s", statusWidth, status.Label())),
	)
}
