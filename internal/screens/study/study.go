// Package study implements the quiz and sentence-scramble screens.
package study

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/summary"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/vocab"
)

// StudyScreen runs a quiz or scramble session over a set of tables.
type StudyScreen struct {
	svc      *sess.Service
	kind     sess.Kind
	tableIDs []string
	quiz     studygen.Settings
	scramble studygen.ScrambleSettings

	tables []vocab.Table
	state  *sess.SessionState
	mc     components.MultiChoice
	input  components.TextInput
	bank   components.WordBank
	errMsg string
}

var (
	_ screen.Screen          = (*StudyScreen)(nil)
	_ screen.KeyHintProvider = (*StudyScreen)(nil)
	_ screen.EscapeHandler   = (*StudyScreen)(nil)
	_ screen.StreakProvider  = (*StudyScreen)(nil)
)

// NewQuiz creates a quiz screen. Empty settings.Sources selects every
// relation of the loaded tables.
func NewQuiz(svc *sess.Service, tableIDs []string, settings studygen.Settings) *StudyScreen {
	return &StudyScreen{svc: svc, kind: sess.KindQuiz, tableIDs: tableIDs, quiz: settings}
}

// NewScramble creates a sentence-scramble screen. Empty settings.Sources
// selects every relation that supports scrambling.
func NewScramble(svc *sess.Service, tableIDs []string, settings studygen.ScrambleSettings) *StudyScreen {
	return &StudyScreen{svc: svc, kind: sess.KindScramble, tableIDs: tableIDs, scramble: settings}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), tickCmd())
}

func (s *StudyScreen) Title() string {
	if s.kind == sess.KindScramble {
		return "Scramble"
	}
	return "Study"
}

func (s *StudyScreen) CapturesEscape() bool {
	return s.state != nil && s.errMsg == ""
}

func (s *StudyScreen) Streak() int {
	if s.state == nil {
		return 0
	}
	return s.state.ConsecutiveCorrect
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.ShowingFeedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	if q := s.state.CurrentQuestion(); q != nil {
		switch q.Type {
		case vocab.ModeMultipleChoice:
			return []layout.KeyHint{{Key: "1-3", Description: "Choose"}, {Key: "Esc", Description: "Quit"}}
		case vocab.ModeTrueFalse:
			return []layout.KeyHint{{Key: "Y", Description: "True"}, {Key: "N", Description: "False"}, {Key: "Esc", Description: "Quit"}}
		}
	}
	if sq := s.state.CurrentScramble(); sq != nil && sq.InteractionMode != studygen.InteractionType {
		return []layout.KeyHint{
			{Key: "←→", Description: "Move"},
			{Key: "Enter", Description: "Pick"},
			{Key: "Bksp", Description: "Undo"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *StudyScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return components.ErrorView(width, s.errMsg)
	case s.state == nil:
		return components.Loading(width, "Preparing your session...")
	case s.state.ShowingQuitConfirm:
		return components.QuitConfirm(width, "session")
	case s.state.ShowingFeedback:
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		return s.handleInit(msg)
	case tickMsg:
		if s.errMsg != "" || (s.state != nil && s.state.Phase >= sess.PhaseEnding) {
			return s, nil
		}
		if s.state != nil {
			s.state.Elapsed = time.Time(msg).Sub(s.state.StartTime)
		}
		return s, tickCmd()
	case endMsg:
		return s.handleEnd()
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.typing() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) initSession() tea.Cmd {
	svc := s.svc
	kind := s.kind
	ids := s.tableIDs
	quiz := s.quiz
	scramble := s.scramble
	return func() tea.Msg {
		ctx := context.Background()
		tables, err := svc.LoadTables(ctx, ids)
		if err != nil {
			return initMsg{Err: err}
		}

		var state *sess.SessionState
		if kind == sess.KindScramble {
			if len(scramble.Sources) == 0 {
				scramble.Sources = vocab.Sources(tables, vocab.ModeScrambled)
			}
			state, err = svc.StartScramble(ctx, tables, scramble)
		} else {
			if len(quiz.Sources) == 0 {
				quiz.Sources = vocab.Sources(tables, "")
			}
			state, err = svc.StartQuiz(ctx, tables, quiz)
		}
		return initMsg{Tables: tables, State: state, Err: err}
	}
}

func (s *StudyScreen) handleInit(msg initMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, sess.ErrNoQuestions) {
			s.errMsg = "Nothing to study here yet. Import a table with matching relations first."
		} else {
			s.errMsg = "Error: " + msg.Err.Error()
		}
		return s, nil
	}
	s.tables = msg.Tables
	s.state = msg.State
	return s, s.prepareQuestion()
}

// prepareQuestion resets the input widgets for the current question.
func (s *StudyScreen) prepareQuestion() tea.Cmd {
	if q := s.state.CurrentQuestion(); q != nil {
		switch q.Type {
		case vocab.ModeMultipleChoice:
			s.mc = components.NewMultiChoice(q.Options, q.CorrectIndex())
		case vocab.ModeTyping:
			s.input = components.NewTextInput("Type your answer...", 0)
			return s.input.Init()
		}
		return nil
	}
	if sq := s.state.CurrentScramble(); sq != nil {
		if sq.InteractionMode == studygen.InteractionType {
			s.input = components.NewTextInput("Type the sentence...", 0)
			return s.input.Init()
		}
		s.bank = components.NewWordBank(sq.ScrambledParts)
	}
	return nil
}

// typing reports whether key input goes to the text field.
func (s *StudyScreen) typing() bool {
	if s.state == nil || s.state.Phase != sess.PhaseActive || s.state.ShowingQuitConfirm {
		return false
	}
	if q := s.state.CurrentQuestion(); q != nil {
		return q.Type == vocab.ModeTyping
	}
	if sq := s.state.CurrentScramble(); sq != nil {
		return sq.InteractionMode == studygen.InteractionType
	}
	return false
}

func (s *StudyScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return endMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
		}
		return s, nil
	}

	if s.state.ShowingFeedback {
		if !sess.Advance(s.state) {
			return s, func() tea.Msg { return endMsg{} }
		}
		return s, s.prepareQuestion()
	}

	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}
	if key == "esc" {
		s.state.ShowingQuitConfirm = true
		return s, nil
	}

	if q := s.state.CurrentQuestion(); q != nil {
		return s.handleQuizKey(q, msg)
	}
	if sq := s.state.CurrentScramble(); sq != nil {
		return s.handleScrambleKey(sq, msg)
	}
	return s, nil
}

func (s *StudyScreen) handleQuizKey(q *studygen.Question, msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch q.Type {
	case vocab.ModeMultipleChoice:
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			sess.HandleAnswer(s.state, s.mc.Answer(), time.Now())
		}
		return s, nil

	case vocab.ModeTrueFalse:
		switch key {
		case "y", "Y", "t", "T", "1":
			sess.HandleAnswer(s.state, "true", time.Now())
		case "n", "N", "f", "F", "2":
			sess.HandleAnswer(s.state, "false", time.Now())
		}
		return s, nil
	}

	if key == "enter" {
		answer := s.input.Value()
		if answer == "" {
			return s, nil
		}
		res := sess.HandleAnswer(s.state, answer, time.Now())
		s.input.Submit(res != nil && res.Correct)
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StudyScreen) handleScrambleKey(sq *studygen.ScrambleQuestion, msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if sq.InteractionMode == studygen.InteractionType {
		if key == "enter" {
			typed := strings.Fields(s.input.Value())
			if len(typed) == 0 {
				return s, nil
			}
			res := sess.HandleScramble(s.state, typed, time.Now())
			s.input.Submit(res != nil && res.Correct)
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "left", "h":
		s.bank.Move(-1)
	case "right", "l":
		s.bank.Move(1)
	case "enter", "space":
		s.bank.PickCursor()
	case "backspace":
		s.bank.Undo()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			s.bank.Pick(int(key[0] - '1'))
		}
	}
	if s.bank.Complete() {
		sess.HandleScramble(s.state, s.bank.Assembled(), time.Now())
	}
	return s, nil
}

func (s *StudyScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.state.Phase = sess.PhaseEnding
	sum := s.svc.FinishQuiz(context.Background(), s.state, s.tables)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
