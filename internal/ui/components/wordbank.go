package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// WordBank holds the shuffled parts of a scrambled sentence and the order in
// which the learner has picked them.
type WordBank struct {
	Parts  []string
	Cursor int
	picked []int
	used   []bool
}

// NewWordBank creates a word bank over parts.
func NewWordBank(parts []string) WordBank {
	return WordBank{
		Parts: parts,
		used:  make([]bool, len(parts)),
	}
}

// Pick appends part i to the answer. Returns false if i is out of range or
// already used.
func (w *WordBank) Pick(i int) bool {
	if i < 0 || i >= len(w.Parts) || w.used[i] {
		return false
	}
	w.used[i] = true
	w.picked = append(w.picked, i)
	return true
}

// Move shifts the cursor by d, clamped to the parts.
func (w *WordBank) Move(d int) {
	w.Cursor = min(max(w.Cursor+d, 0), max(len(w.Parts)-1, 0))
}

// PickCursor picks the part under the cursor.
func (w *WordBank) PickCursor() bool {
	return w.Pick(w.Cursor)
}

// Undo returns the most recently picked part to the bank.
func (w *WordBank) Undo() {
	if len(w.picked) == 0 {
		return
	}
	last := w.picked[len(w.picked)-1]
	w.picked = w.picked[:len(w.picked)-1]
	w.used[last] = false
}

// Complete reports whether every part has been picked.
func (w WordBank) Complete() bool {
	return len(w.picked) == len(w.Parts)
}

// Assembled returns the picked parts in order.
func (w WordBank) Assembled() []string {
	out := make([]string, len(w.picked))
	for i, p := range w.picked {
		out[i] = w.Parts[p]
	}
	return out
}

// View renders the assembled sentence above the numbered parts.
func (w WordBank) View(cw int) string {
	answer := strings.Join(w.Assembled(), " ")
	if answer == "" {
		answer = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("pick parts in order…")
	}

	var chips []string
	for i, p := range w.Parts {
		label := fmt.Sprintf("%d %s", i+1, p)
		style := theme.Chip
		if w.used[i] {
			style = theme.ChipUsed
		}
		if i == w.Cursor {
			style = style.BorderForeground(theme.ArcadeYellow)
		}
		chips = append(chips, style.Render(label))
	}

	bank := lipgloss.NewStyle().Width(cw).Render(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(answer) + "\n\n" + bank
}
