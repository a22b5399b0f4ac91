package vocab

import (
	"strings"
	"time"
)

// StudyMode identifies a way of practicing a relation.
type StudyMode string

const (
	ModeMultipleChoice StudyMode = "multiple_choice"
	ModeTyping         StudyMode = "typing"
	ModeTrueFalse      StudyMode = "true_false"
	ModeScrambled      StudyMode = "scrambled"
	ModeFlashcards     StudyMode = "flashcards"
)

// AllModes lists every known study mode in display order.
var AllModes = []StudyMode{
	ModeMultipleChoice,
	ModeTyping,
	ModeTrueFalse,
	ModeScrambled,
	ModeFlashcards,
}

// Valid reports whether m is a known study mode.
func (m StudyMode) Valid() bool {
	for _, known := range AllModes {
		if m == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable name for the mode.
func (m StudyMode) Label() string {
	switch m {
	case ModeMultipleChoice:
		return "Multiple Choice"
	case ModeTyping:
		return "Typing"
	case ModeTrueFalse:
		return "True / False"
	case ModeScrambled:
		return "Scrambled"
	case ModeFlashcards:
		return "Flashcards"
	default:
		return string(m)
	}
}

// FlashcardStatus is the confidence level recorded for a flashcard.
type FlashcardStatus string

const (
	StatusNew     FlashcardStatus = "new"
	StatusAgain   FlashcardStatus = "again"
	StatusHard    FlashcardStatus = "hard"
	StatusGood    FlashcardStatus = "good"
	StatusEasy    FlashcardStatus = "easy"
	StatusPerfect FlashcardStatus = "perfect"
)

// Ratings are the statuses a learner can give while reviewing, weakest first.
var Ratings = []FlashcardStatus{StatusAgain, StatusHard, StatusGood, StatusEasy, StatusPerfect}

// Label returns the capitalized status name.
func (s FlashcardStatus) Label() string {
	if s == "" {
		return "New"
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Column is a named field of a table.
type Column struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// RowStats aggregates a learner's history with one row.
type RowStats struct {
	Correct             int             `json:"correct"`
	Incorrect           int             `json:"incorrect"`
	LastStudied         time.Time       `json:"last_studied"`
	FlashcardStatus     FlashcardStatus `json:"flashcard_status"`
	FlashcardEncounters int             `json:"flashcard_encounters"`
	LastPracticed       time.Time       `json:"last_practiced"`
	Reviewed            bool            `json:"reviewed"`
}

// Accuracy returns the fraction of correct answers, or 0 with no attempts.
func (s RowStats) Accuracy() float64 {
	total := s.Correct + s.Incorrect
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total)
}

// Row is one studyable entry, keyed by column ID.
type Row struct {
	ID    string            `json:"id" yaml:"id" validate:"required"`
	Cols  map[string]string `json:"cols" yaml:"cols"`
	Stats RowStats          `json:"stats" yaml:"-"`
}

// Values returns the trimmed, non-empty values of the given columns in order.
func (r Row) Values(columnIDs []string) []string {
	var out []string
	for _, id := range columnIDs {
		v := strings.TrimSpace(r.Cols[id])
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Relation maps question columns to answer columns for a set of study modes.
type Relation struct {
	ID                string      `json:"id" yaml:"id" validate:"required"`
	Name              string      `json:"name" yaml:"name" validate:"required"`
	QuestionColumnIDs []string    `json:"question_column_ids" yaml:"question" validate:"required,min=1,dive,required"`
	AnswerColumnIDs   []string    `json:"answer_column_ids" yaml:"answer" validate:"dive,required"`
	CompatibleModes   []StudyMode `json:"compatible_modes" yaml:"modes" validate:"required,min=1,dive,study_mode"`
}

// Supports reports whether the relation can drive questions of the given mode.
// Every mode needs question columns; all but Scrambled also need answer columns.
func (r Relation) Supports(mode StudyMode) bool {
	if len(r.QuestionColumnIDs) == 0 {
		return false
	}
	if mode != ModeScrambled && len(r.AnswerColumnIDs) == 0 {
		return false
	}
	for _, m := range r.CompatibleModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Table is a named collection of rows with its columns and relations.
type Table struct {
	ID        string     `json:"id" yaml:"id" validate:"required"`
	Name      string     `json:"name" yaml:"name" validate:"required"`
	Columns   []Column   `json:"columns" yaml:"columns" validate:"required,min=1,dive"`
	Rows      []Row      `json:"rows" yaml:"rows" validate:"dive"`
	Relations []Relation `json:"relations" yaml:"relations" validate:"dive"`
}

// Relation returns the relation with the given ID.
func (t *Table) Relation(id string) (*Relation, bool) {
	for i := range t.Relations {
		if t.Relations[i].ID == id {
			return &t.Relations[i], true
		}
	}
	return nil, false
}

// Row returns the row with the given ID.
func (t *Table) Row(id string) (*Row, bool) {
	for i := range t.Rows {
		if t.Rows[i].ID == id {
			return &t.Rows[i], true
		}
	}
	return nil, false
}

// ColumnName returns the display name of a column, falling back to its ID.
func (t *Table) ColumnName(id string) string {
	for _, c := range t.Columns {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// RowIDs returns the IDs of all rows in table order.
func (t *Table) RowIDs() []string {
	ids := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}

// Source selects one relation of one table for a study session.
type Source struct {
	TableID    string `json:"table_id" yaml:"table_id"`
	RelationID string `json:"relation_id" yaml:"relation_id"`
}

// FindTable returns the table with the given ID from tables.
func FindTable(tables []Table, id string) (*Table, bool) {
	for i := range tables {
		if tables[i].ID == id {
			return &tables[i], true
		}
	}
	return nil, false
}

// Sources lists every relation of tables that supports mode, in table order.
// An empty mode matches every relation.
func Sources(tables []Table, mode StudyMode) []Source {
	var out []Source
	for _, t := range tables {
		for _, r := range t.Relations {
			if mode != "" && !r.Supports(mode) {
				continue
			}
			out = append(out, Source{TableID: t.ID, RelationID: r.ID})
		}
	}
	return out
}

// SplitSources returns the distinct table and relation IDs of sources.
func SplitSources(sources []Source) (tableIDs, relationIDs []string) {
	seenT := make(map[string]bool)
	seenR := make(map[string]bool)
	for _, s := range sources {
		if !seenT[s.TableID] {
			seenT[s.TableID] = true
			tableIDs = append(tableIDs, s.TableID)
		}
		if !seenR[s.RelationID] {
			seenR[s.RelationID] = true
			relationIDs = append(relationIDs, s.RelationID)
		}
	}
	return tableIDs, relationIDs
}
