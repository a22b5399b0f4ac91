// Package flashcards implements the flashcard review screen.
package flashcards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/summary"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/vocab"
)

type initMsg struct {
	Tables []vocab.Table
	Deck   *sess.Deck
	Err    error
}

// FlashcardScreen shows one card at a time; the learner flips it and rates
// how well they knew it.
type FlashcardScreen struct {
	svc         *sess.Service
	tableIDs    []string
	relationIDs []string
	resume      bool

	tables      []vocab.Table
	deck        *sess.Deck
	flipped     bool
	confirmQuit bool
	errMsg      string
}

var (
	_ screen.Screen          = (*FlashcardScreen)(nil)
	_ screen.KeyHintProvider = (*FlashcardScreen)(nil)
	_ screen.EscapeHandler   = (*FlashcardScreen)(nil)
)

// New creates a flashcard screen. Empty relationIDs selects every relation
// of the loaded tables that supports flashcards.
func New(svc *sess.Service, tableIDs, relationIDs []string, resume bool) *FlashcardScreen {
	return &FlashcardScreen{
		svc:         svc,
		tableIDs:    tableIDs,
		relationIDs: relationIDs,
		resume:      resume,
	}
}

func (f *FlashcardScreen) Init() tea.Cmd {
	svc := f.svc
	ids, rels, resume := f.tableIDs, f.relationIDs, f.resume
	return func() tea.Msg {
		ctx := context.Background()
		tables, err := svc.LoadTables(ctx, ids)
		if err != nil {
			return initMsg{Err: err}
		}
		tableIDs, relationIDs := ids, rels
		if len(tableIDs) == 0 || len(relationIDs) == 0 {
			allT, allR := vocab.SplitSources(vocab.Sources(tables, vocab.ModeFlashcards))
			if len(tableIDs) == 0 {
				tableIDs = allT
			}
			if len(relationIDs) == 0 {
				relationIDs = allR
			}
		}
		deck, err := svc.StartFlashcards(ctx, tables, tableIDs, relationIDs, resume)
		return initMsg{Tables: tables, Deck: deck, Err: err}
	}
}

func (f *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (f *FlashcardScreen) CapturesEscape() bool {
	return f.deck != nil && f.errMsg == ""
}

func (f *FlashcardScreen) KeyHints() []layout.KeyHint {
	switch {
	case f.deck == nil:
		return nil
	case f.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End review"},
			{Key: "N", Description: "Keep going"},
		}
	case !f.flipped:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "Esc", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Again · Hard · Good · Easy · Perfect"},
		{Key: "Space", Description: "Flip back"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (f *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, sess.ErrNoQuestions) {
				f.errMsg = "No flashcards here yet. Import a table with a flashcards relation first."
			} else {
				f.errMsg = "Error: " + msg.Err.Error()
			}
			return f, nil
		}
		f.tables = msg.Tables
		f.deck = msg.Deck
		return f, nil

	case tea.KeyPressMsg:
		return f.handleKey(msg.String())
	}
	return f, nil
}

func (f *FlashcardScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if f.errMsg != "" {
		return f, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if f.deck == nil {
		return f, nil
	}

	if f.confirmQuit {
		switch key {
		case "y", "Y":
			return f.finish()
		case "n", "N", "esc":
			f.confirmQuit = false
		}
		return f, nil
	}

	switch key {
	case "esc":
		f.confirmQuit = true
		return f, nil
	case "space", "enter", "f":
		f.flipped = !f.flipped
		return f, nil
	}

	if !f.flipped || len(key) != 1 || key[0] < '1' || key[0] > '5' {
		return f, nil
	}
	status := vocab.Ratings[int(key[0]-'1')]
	f.svc.Rate(context.Background(), f.deck, status)
	f.flipped = false
	if f.deck.Session.Done() {
		return f.finish()
	}
	return f, nil
}

func (f *FlashcardScreen) finish() (screen.Screen, tea.Cmd) {
	f.confirmQuit = false
	sum := f.svc.FinishFlashcards(context.Background(), f.deck, f.tables)
	return f, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (f *FlashcardScreen) View(width, height int) string {
	switch {
	case f.errMsg != "":
		return components.ErrorView(width, f.errMsg)
	case f.deck == nil:
		return components.Loading(width, "Shuffling your cards...")
	case f.confirmQuit:
		return components.QuitConfirm(width, "review")
	}

	card, ok := f.deck.Current()
	if !ok {
		return components.Loading(width, "No cards left.")
	}

	fs := f.deck.Session
	cw := components.ContentWidth(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	progress := components.NewProgressBar("Seen", fs.Seen(), len(fs.Queue), min(width-4, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n")
	b.WriteString(components.Centered(width, fmt.Sprintf("%s   ·   %d reviewed", f.tableName(card.TableID), fs.SessionEncounters), dim))
	b.WriteString("\n\n")

	text := card.Front
	if f.flipped {
		text = card.Front + "\n\n" + card.Back
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Flashcard(text, f.flipped, cw)))
	b.WriteString("\n\n")

	if f.flipped {
		var opts []string
		for i, st := range vocab.Ratings {
			opts = append(opts, lipgloss.NewStyle().
				Foreground(theme.RatingColor(st)).
				Render(fmt.Sprintf("[%d] %s", i+1, st.Label())))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(opts, "  ")))
	} else {
		b.WriteString(components.Centered(width, "Press space to reveal", dim))
	}
	return b.String()
}

func (f *FlashcardScreen) tableName(id string) string {
	if t, ok := vocab.FindTable(f.tables, id); ok {
		return t.Name
	}
	return id
}
