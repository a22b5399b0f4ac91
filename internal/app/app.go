package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

type xpLoadedMsg int

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *sess.Service
	start  screen.Screen
	xp     int
	width  int
	height int
}

// NewAppModel creates an AppModel with root at the bottom of the stack.
// A non-nil start screen is pushed on top of it when the program starts.
func NewAppModel(svc *sess.Service, root, start screen.Screen) AppModel {
	return AppModel{
		router: router.New(root),
		svc:    svc,
		start:  start,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.loadXP()}
	if m.start != nil {
		start := m.start
		cmds = append(cmds, func() tea.Msg { return router.PushScreenMsg{Screen: start} })
	}
	return tea.Batch(cmds...)
}

func (m AppModel) loadXP() tea.Cmd {
	svc := m.svc
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		return xpLoadedMsg(svc.TotalXP(context.Background()))
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case xpLoadedMsg:
		m.xp = int(msg)
		return m, nil

	case screen.RefreshStatsMsg:
		return m, tea.Batch(m.loadXP(), m.router.Update(msg))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.CapturesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{Refresh: true} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	streak := 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StreakProvider); ok {
			streak = sp.Streak()
		}
	}

	header := layout.RenderHeader(layout.Header{Title: title, XP: m.xp, Streak: streak}, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program with root at the bottom of the screen
// stack and, if non-nil, start shown first.
func Run(svc *sess.Service, root, start screen.Screen) error {
	p := tea.NewProgram(NewAppModel(svc, root, start))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
