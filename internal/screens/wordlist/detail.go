package wordlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/vocab"
)

// WordDetailScreen shows every column of one row and its stats.
type WordDetailScreen struct {
	table *vocab.Table
	word  vocab.Row
}

var _ screen.Screen = (*WordDetailScreen)(nil)
var _ screen.KeyHintProvider = (*WordDetailScreen)(nil)

func newWordDetail(t *vocab.Table, w vocab.Row) *WordDetailScreen {
	return &WordDetailScreen{table: t, word: w}
}

func (d *WordDetailScreen) Init() tea.Cmd { return nil }
func (d *WordDetailScreen) Title() string { return Label(d.table, d.word) }

func (d *WordDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *WordDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *WordDetailScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	labelWidth := 10
	for _, c := range d.table.Columns {
		labelWidth = max(labelWidth, len([]rune(c.Name))+2)
	}
	field := func(name, v string) string {
		return dim.Render(fmt.Sprintf("  %-*s", labelWidth, name+":")) + val.Render(v) + "\n"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("  " + Label(d.table, d.word)))
	b.WriteString("\n")
	b.WriteString(dim.Render("  " + d.table.Name))
	b.WriteString("\n\n")

	for _, c := range d.table.Columns {
		v := strings.TrimSpace(d.word.Cols[c.ID])
		if v == "" {
			v = "—"
		}
		b.WriteString(field(c.Name, v))
	}
	b.WriteString("\n")

	st := d.word.Stats
	b.WriteString(section.Render("  Quiz"))
	b.WriteString("\n")
	b.WriteString(field("Correct", fmt.Sprint(st.Correct)))
	b.WriteString(field("Incorrect", fmt.Sprint(st.Incorrect)))
	b.WriteString(field("Accuracy", Accuracy(st)))
	if !st.LastStudied.IsZero() {
		b.WriteString(field("Studied", st.LastStudied.Local().Format("Jan 02, 2006")))
	}
	b.WriteString("\n")

	b.WriteString(section.Render("  Flashcards"))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("  %-*s", labelWidth, "Status:")) +
		lipgloss.NewStyle().Foreground(theme.RatingColor(st.FlashcardStatus)).Render(st.FlashcardStatus.Label()) + "\n")
	b.WriteString(field("Reviews", fmt.Sprint(st.FlashcardEncounters)))
	if !st.LastPracticed.IsZero() {
		b.WriteString(field("Practiced", st.LastPracticed.Local().Format("Jan 02, 2006")))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}
