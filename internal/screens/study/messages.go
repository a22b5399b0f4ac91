package study

import (
	"time"

	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/vocab"
)

// initMsg is sent when tables are loaded and questions generated.
type initMsg struct {
	Tables []vocab.Table
	State  *sess.SessionState
	Err    error
}

// tickMsg is sent every second to refresh the elapsed clock.
type tickMsg time.Time

// endMsg triggers the session end flow.
type endMsg struct{}
