package studygen

import "github.com/abhisek/lexiz/internal/vocab"

// SessionType names what a study session draws from. Only tables exist today.
type SessionType string

const SessionTypeTable SessionType = "table"

// WordSelection controls which rows are eligible for a session.
type WordSelection string

const (
	// SelectionAuto uses every row of the source tables.
	SelectionAuto WordSelection = "auto"

	// SelectionManual restricts rows to Settings.ManualWordIDs.
	SelectionManual WordSelection = "manual"
)

// InteractionMode is how the learner reassembles a scrambled sentence.
// It is carried through for the presentation layer only.
type InteractionMode string

const (
	InteractionClick InteractionMode = "click"
	InteractionType  InteractionMode = "type"
)

// AnswerSeparator joins the values of multi-column questions and answers.
const AnswerSeparator = " / "

// DistractorCount is the number of wrong options in a multiple-choice question.
const DistractorCount = 2

// Settings configures a quiz-style study session.
type Settings struct {
	Type SessionType

	// Sources lists the (table, relation) pairs to draw questions from.
	Sources []vocab.Source

	// Modes are the allowed question types, in preference order.
	Modes []vocab.StudyMode

	// RandomizeModes picks a mode at random per question instead of
	// the first compatible one.
	RandomizeModes bool

	WordSelectionMode WordSelection
	ManualWordIDs     []string

	// WordCount caps the number of questions. Values <= 0 produce none.
	WordCount int
}

// Question is a single generated quiz question.
type Question struct {
	RowID      string
	TableID    string
	RelationID string

	// QuestionSourceColumnNames are the display names of the prompt columns.
	QuestionSourceColumnNames []string

	QuestionText  string
	CorrectAnswer string

	// Type is one of Typing, MultipleChoice or TrueFalse.
	Type vocab.StudyMode

	// Options holds the three choices for MultipleChoice (one is CorrectAnswer)
	// and ["True", "False"] for TrueFalse.
	Options []string

	// ShownAnswer is the answer displayed next to the prompt in TrueFalse.
	// PairingCorrect reports whether it is the row's real answer.
	ShownAnswer    string
	PairingCorrect bool
}

// ScrambleSettings configures a sentence-scramble session.
type ScrambleSettings struct {
	Sources []vocab.Source

	// SplitCount is the minimum number of words a sentence needs to qualify.
	SplitCount int

	InteractionMode InteractionMode
}

// ScrambleQuestion asks the learner to reorder shuffled words into a sentence.
type ScrambleQuestion struct {
	RowID            string
	TableID          string
	RelationID       string
	OriginalSentence string
	ScrambledParts   []string
	InteractionMode  InteractionMode
}
