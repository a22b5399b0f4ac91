package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that handle esc themselves,
// e.g. to ask for quit confirmation, instead of being popped by the app.
type EscapeHandler interface {
	CapturesEscape() bool
}

// StreakProvider is implemented by screens that show a running answer
// streak in the header.
type StreakProvider interface {
	Streak() int
}

// RefreshStatsMsg asks the app to reload header stats after a session
// has been persisted.
type RefreshStatsMsg struct{}
