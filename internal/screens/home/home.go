package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/flashcards"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/study"
	"github.com/abhisek/lexiz/internal/screens/wordlist"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/vocab"
)

type loadedMsg struct {
	Tables []vocab.Table
	Err    error
}

type stats struct {
	Tables    int
	Words     int
	Practiced int
}

// HomeScreen is the main menu. It lists the stored tables and starts
// sessions over all of them or the one selected with ←/→.
type HomeScreen struct {
	svc    *sess.Service
	cfg    config.Config
	tables []vocab.Table
	filter int // 0 = all tables, i = tables[i-1]
	loaded bool
	menu   components.Menu
	errMsg string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(svc *sess.Service, cfg config.Config) *HomeScreen {
	h := &HomeScreen{svc: svc, cfg: cfg}
	h.menu = h.buildMenu()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		tables, err := svc.LoadTables(context.Background(), nil)
		return loadedMsg{Tables: tables, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if len(h.tables) > 1 {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Table"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.errMsg = ""
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		}
		h.tables = msg.Tables
		if h.filter > len(h.tables) {
			h.filter = 0
		}
		if !h.loaded {
			// The menu built in New had every study entry disabled.
			h.loaded = true
			h.menu = h.buildMenu()
			return h, nil
		}
		h.rebuildMenu()
		return h, nil

	case screen.RefreshStatsMsg:
		return h, h.Init()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			h.cycleFilter(-1)
			return h, nil
		case "right", "l", "tab":
			h.cycleFilter(1)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) cycleFilter(d int) {
	n := len(h.tables) + 1
	h.filter = ((h.filter+d)%n + n) % n
	h.rebuildMenu()
}

// rebuildMenu recomputes which entries are enabled, keeping the selection
// when it is still enabled.
func (h *HomeScreen) rebuildMenu() {
	sel := h.menu.Selected
	h.menu = h.buildMenu()
	if sel < len(h.menu.Items) && !h.menu.Items[sel].Disabled {
		h.menu.Selected = sel
	}
}

// selected returns the tables the next session draws from.
func (h *HomeScreen) selected() []vocab.Table {
	if h.filter == 0 || h.filter > len(h.tables) {
		return h.tables
	}
	return h.tables[h.filter-1 : h.filter]
}

func (h *HomeScreen) selectedIDs() []string {
	var ids []string
	for _, t := range h.selected() {
		ids = append(ids, t.ID)
	}
	return ids
}

func (h *HomeScreen) supportsAny(modes ...vocab.StudyMode) bool {
	for _, m := range modes {
		if len(vocab.Sources(h.selected(), m)) > 0 {
			return true
		}
	}
	return false
}

func (h *HomeScreen) buildMenu() components.Menu {
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}

	items := []components.MenuItem{
		{
			Label:    "STUDY",
			Disabled: !h.supportsAny(h.cfg.Study.Modes...),
			Action: func() tea.Cmd {
				tables := h.selected()
				var sources []vocab.Source
				for _, m := range h.cfg.Study.Modes {
					sources = appendUnique(sources, vocab.Sources(tables, m))
				}
				return push(study.NewQuiz(h.svc, h.selectedIDs(), h.cfg.StudySettings(sources)))
			},
		},
		{
			Label:    "SCRAMBLE",
			Disabled: !h.supportsAny(vocab.ModeScrambled),
			Action: func() tea.Cmd {
				sources := vocab.Sources(h.selected(), vocab.ModeScrambled)
				return push(study.NewScramble(h.svc, h.selectedIDs(), h.cfg.ScrambleSettings(sources)))
			},
		},
		{
			Label:    "FLASHCARDS",
			Disabled: !h.supportsAny(vocab.ModeFlashcards),
			Action: func() tea.Cmd {
				tableIDs, relationIDs := vocab.SplitSources(vocab.Sources(h.selected(), vocab.ModeFlashcards))
				return push(flashcards.New(h.svc, tableIDs, relationIDs, h.cfg.Flashcards.Resume))
			},
		},
		{
			Label:  "HISTORY",
			Action: func() tea.Cmd { return push(history.New(h.svc)) },
		},
		{
			Label:    "WORDS",
			Disabled: len(h.selected()) == 0,
			Action:   func() tea.Cmd { return push(wordlist.New(h.selected())) },
		},
		{
			Label:  "QUIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
	return components.NewMenu(items)
}

func appendUnique(dst, src []vocab.Source) []vocab.Source {
	for _, s := range src {
		found := false
		for _, d := range dst {
			if d == s {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst
}

func (h *HomeScreen) stats() stats {
	st := stats{Tables: len(h.selected())}
	for _, t := range h.selected() {
		st.Words += len(t.Rows)
		for _, r := range t.Rows {
			if r.Stats.Reviewed || r.Stats.Correct+r.Stats.Incorrect > 0 {
				st.Practiced++
			}
		}
	}
	return st
}

func (h *HomeScreen) mascot(st stats) MascotVariant {
	switch {
	case len(h.tables) == 0:
		return MascotAlert
	case st.Words > 0 && st.Practiced == st.Words:
		return MascotCelebrating
	}
	return MascotIdle
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	st := h.stats()

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(st), cw))
	}
	sections = append(sections, renderStatsBar(st, cw, compact))

	if len(h.tables) > 1 {
		labels := []string{"ALL"}
		for _, t := range h.tables {
			labels = append(labels, t.Name)
		}
		sections = append(sections, renderFilter(labels, h.filter, cw))
	}

	sections = append(sections, renderMenu(h.menu.Items, h.menu.Selected, cw))

	switch {
	case h.errMsg != "":
		sections = append(sections, renderHint("⚠ "+h.errMsg, cw))
	case len(h.tables) == 0:
		sections = append(sections, renderHint("Import a table to begin: lexiz tables import <file>", cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
