package session

import (
	"time"

	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/vocab"
)

// Kind identifies the type of study session.
type Kind string

const (
	KindQuiz       Kind = "quiz"
	KindScramble   Kind = "scramble"
	KindFlashcards Kind = "flashcards"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Serving questions
	PhaseFeedback                     // Showing answer feedback
	PhaseEnding                       // All questions answered or quit confirmed
	PhaseSummary                      // Showing summary screen
)

// Result records the outcome of a single answered question.
type Result struct {
	RowID      string
	TableID    string
	RelationID string
	Mode       vocab.StudyMode
	Input      string
	Correct    bool
	XP         int
	AnsweredAt time.Time
}

// SessionState tracks the runtime state of a quiz or scramble session.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	Kind Kind

	// Questions is populated for quiz sessions, Scrambles for scramble sessions.
	Questions []studygen.Question
	Scrambles []studygen.ScrambleQuestion

	// Index points at the question being shown.
	Index int

	// Phase is the current session phase.
	Phase SessionPhase

	Results []Result

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// ConsecutiveCorrect is the current streak; BestStreak the longest this session.
	ConsecutiveCorrect  int
	BestStreak          int
	NextStreakThreshold int

	// XP earned this session, and by the most recent answer.
	XP     int
	LastXP int

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// ShowingFeedback is true when the feedback overlay is displayed.
	ShowingFeedback bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool
}

// NewQuizState creates the state for a quiz session over questions.
func NewQuizState(sessionID string, questions []studygen.Question, now time.Time) *SessionState {
	return &SessionState{
		SessionID:           sessionID,
		Kind:                KindQuiz,
		Questions:           questions,
		Phase:               PhaseActive,
		StartTime:           now,
		NextStreakThreshold: BaseStreakThreshold,
	}
}

// NewScrambleState creates the state for a scramble session.
func NewScrambleState(sessionID string, scrambles []studygen.ScrambleQuestion, now time.Time) *SessionState {
	return &SessionState{
		SessionID:           sessionID,
		Kind:                KindScramble,
		Scrambles:           scrambles,
		Phase:               PhaseActive,
		StartTime:           now,
		NextStreakThreshold: BaseStreakThreshold,
	}
}

// Len returns the number of questions in the session.
func (s *SessionState) Len() int {
	if s.Kind == KindScramble {
		return len(s.Scrambles)
	}
	return len(s.Questions)
}

// Finished reports whether every question has been served.
func (s *SessionState) Finished() bool {
	return s.Index >= s.Len()
}

// CurrentQuestion returns the active quiz question, or nil.
func (s *SessionState) CurrentQuestion() *studygen.Question {
	if s.Kind != KindQuiz || s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// CurrentScramble returns the active scramble question, or nil.
func (s *SessionState) CurrentScramble() *studygen.ScrambleQuestion {
	if s.Kind != KindScramble || s.Index < 0 || s.Index >= len(s.Scrambles) {
		return nil
	}
	return &s.Scrambles[s.Index]
}
