package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const cardArt = `  ╭─────────────╮
  │  ╭───────╮  │
  │  │ ◉   ◉ │  │
  │  │   ◡   │  │
  │  ╰───────╯  │
  │  A · あ · Ж │
  ╰─────────────╯`

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen is the splash shown over the home screen on a bare launch.
// A keypress pops it once the intro has played.
type WelcomeScreen struct {
	elapsed   time.Duration
	tickCount int
	dismissed bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.dismissed {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if w.elapsed >= totalDur {
			return w, w.dismiss()
		}
		// Skip ahead on the first key.
		w.elapsed = totalDur
		return w, nil
	}
	return w, nil
}

func (w *WelcomeScreen) dismiss() tea.Cmd {
	if w.dismissed {
		return nil
	}
	w.dismissed = true
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(cardArt)

	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		for i, pair := range map[int][2]string{0: {s1, s2}, 3: {s2, s1}, 6: {s1, s2}} {
			if i < len(lines) {
				lines[i] = pair[0] + "  " + lines[i] + "  " + pair[1]
			}
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("One word at a time."))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
