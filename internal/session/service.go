package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/flashcard"
	"github.com/abhisek/lexiz/internal/logger"
	"github.com/abhisek/lexiz/internal/random"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/vocab"
)

// ErrNoQuestions is returned when a selection yields nothing to study.
var ErrNoQuestions = errors.New("no eligible rows for this selection")

// Service starts study sessions and persists their outcome.
// Persistence failures are logged and never interrupt a session.
type Service struct {
	tables store.TableRepo
	queues store.QueueRepo
	events store.EventRepo
	log    *logger.Logger
	src    random.Source
	now    func() time.Time
}

// NewService creates a Service. A nil logger discards output and a nil
// source uses the process-wide random generator.
func NewService(tables store.TableRepo, queues store.QueueRepo, events store.EventRepo, log *logger.Logger, src random.Source) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if src == nil {
		src = random.Default()
	}
	return &Service{
		tables: tables,
		queues: queues,
		events: events,
		log:    log,
		src:    src,
		now:    time.Now,
	}
}

// SetClock overrides the time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// LoadTables returns the tables with the given IDs, or every table when ids is empty.
func (s *Service) LoadTables(ctx context.Context, ids []string) ([]vocab.Table, error) {
	if len(ids) == 0 {
		return s.tables.List(ctx)
	}
	out := make([]vocab.Table, 0, len(ids))
	for _, id := range ids {
		t, err := s.tables.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

// StartQuiz generates questions and opens a quiz session.
func (s *Service) StartQuiz(ctx context.Context, tables []vocab.Table, settings studygen.Settings) (*SessionState, error) {
	questions := studygen.GenerateStudySession(tables, settings, s.src)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	state := NewQuizState(uuid.New().String(), questions, s.now())
	s.appendStart(ctx, state.SessionID, KindQuiz)
	return state, nil
}

// StartScramble generates scramble questions and opens a scramble session.
func (s *Service) StartScramble(ctx context.Context, tables []vocab.Table, settings studygen.ScrambleSettings) (*SessionState, error) {
	scrambles := studygen.GenerateScrambleSession(tables, settings, s.src)
	if len(scrambles) == 0 {
		return nil, ErrNoQuestions
	}
	state := NewScrambleState(uuid.New().String(), scrambles, s.now())
	s.appendStart(ctx, state.SessionID, KindScramble)
	return state, nil
}

// FinishQuiz folds the session results into row stats, persists them and
// returns the summary. It is used for both quiz and scramble sessions.
func (s *Service) FinishQuiz(ctx context.Context, state *SessionState, tables []vocab.Table) *SessionSummary {
	now := s.now()
	state.Phase = PhaseSummary
	state.Elapsed = now.Sub(state.StartTime)

	for tableID, rows := range ApplyResults(tables, state.Results, now) {
		if err := s.tables.UpdateRowStats(ctx, tableID, rows); err != nil {
			s.log.Error("save row stats", "table", tableID, "error", err)
		}
	}

	summary := BuildSummary(state, tables)
	s.appendEnd(ctx, state.SessionID, state.Kind, summary)
	return summary
}

// Card is the printable content of one flashcard.
type Card struct {
	RowID   string
	TableID string
	Front   string
	Back    string
}

// Deck is an active flashcard session together with its cards.
type Deck struct {
	Session *flashcard.Session
	Cards   map[string]Card
}

// Current returns the card at the head of the review position.
func (d *Deck) Current() (Card, bool) {
	id, ok := d.Session.Current()
	if !ok {
		return Card{}, false
	}
	c, ok := d.Cards[id]
	return c, ok
}

// BuildCards collects flashcards for the selected tables and relations.
// A row uses the first selected relation its table defines that supports
// flashcards. Rows with an empty front are skipped. Card IDs are returned
// in table order.
func BuildCards(tables []vocab.Table, tableIDs, relationIDs []string) (map[string]Card, []string) {
	cards := make(map[string]Card)
	var ids []string
	for _, tableID := range tableIDs {
		tbl, ok := vocab.FindTable(tables, tableID)
		if !ok {
			continue
		}
		var rels []*vocab.Relation
		for _, relID := range relationIDs {
			if rel, ok := tbl.Relation(relID); ok && rel.Supports(vocab.ModeFlashcards) {
				rels = append(rels, rel)
			}
		}
		if len(rels) == 0 {
			continue
		}
		for _, row := range tbl.Rows {
			if _, dup := cards[row.ID]; dup {
				continue
			}
			for _, rel := range rels {
				front := strings.Join(row.Values(rel.QuestionColumnIDs), studygen.AnswerSeparator)
				if front == "" {
					continue
				}
				cards[row.ID] = Card{
					RowID:   row.ID,
					TableID: tbl.ID,
					Front:   front,
					Back:    strings.Join(row.Values(rel.AnswerColumnIDs), studygen.AnswerSeparator),
				}
				ids = append(ids, row.ID)
				break
			}
		}
	}
	return cards, ids
}

// StartFlashcards builds the review queue and opens a flashcard session.
// With resume set, a queue saved for the same selection is continued.
func (s *Service) StartFlashcards(ctx context.Context, tables []vocab.Table, tableIDs, relationIDs []string, resume bool) (*Deck, error) {
	cards, ids := BuildCards(tables, tableIDs, relationIDs)
	if len(ids) == 0 {
		return nil, ErrNoQuestions
	}

	var saved []string
	if resume {
		q, err := s.queues.Load(ctx, flashcard.QueueKey(tableIDs, relationIDs))
		if err != nil {
			s.log.Warn("load saved queue", "error", err)
		}
		saved = q
	}

	queue := flashcard.BuildQueue(saved, ids, s.src)
	fs := flashcard.NewSession(tableIDs, relationIDs, queue, s.now())
	s.appendStart(ctx, fs.ID, KindFlashcards)
	return &Deck{Session: fs, Cards: cards}, nil
}

// Rate applies a rating to the current card and records it.
func (s *Service) Rate(ctx context.Context, deck *Deck, status vocab.FlashcardStatus) {
	card, ok := deck.Current()
	if !ok {
		return
	}
	now := s.now()
	deck.Session.Rate(status, now)

	err := s.events.AppendReviewEvent(ctx, store.ReviewEventData{
		SessionID: deck.Session.ID,
		TableID:   card.TableID,
		RowID:     card.RowID,
		Status:    status,
		Timestamp: now,
	})
	if err != nil {
		s.log.Error("append review event", "error", err)
	}
}

// FinishFlashcards persists the last rating of every reviewed row, saves
// the queue for later resumption and returns the summary.
func (s *Service) FinishFlashcards(ctx context.Context, deck *Deck, tables []vocab.Table) *SessionSummary {
	now := s.now()
	fs := deck.Session

	byTable := make(map[string][]flashcard.RowUpdate)
	for _, u := range fs.Finalize(now) {
		card, ok := deck.Cards[u.RowID]
		if !ok {
			continue
		}
		byTable[card.TableID] = append(byTable[card.TableID], u)
	}
	for tableID, updates := range byTable {
		tbl, ok := vocab.FindTable(tables, tableID)
		if !ok {
			continue
		}
		rows := flashcard.ApplyUpdates(tbl, updates)
		if err := s.tables.UpdateRowStats(ctx, tableID, rows); err != nil {
			s.log.Error("save flashcard stats", "table", tableID, "error", err)
		}
	}

	if err := s.queues.Save(ctx, fs.Key(), fs.Queue); err != nil {
		s.log.Error("save queue", "key", fs.Key(), "error", err)
	}

	summary := BuildFlashcardSummary(fs, now)
	s.appendEnd(ctx, fs.ID, KindFlashcards, summary)
	return summary
}

// TotalXP returns lifetime XP, or 0 if it cannot be read.
func (s *Service) TotalXP(ctx context.Context) int {
	xp, err := s.events.TotalXP(ctx)
	if err != nil {
		s.log.Warn("read total xp", "error", err)
		return 0
	}
	return xp
}

// RecentSessions returns up to limit finished sessions, newest first.
func (s *Service) RecentSessions(ctx context.Context, limit int) ([]store.SessionSummaryRecord, error) {
	return s.events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
}

// SessionReviews returns the flashcard ratings given in one session.
func (s *Service) SessionReviews(ctx context.Context, sessionID string) ([]store.ReviewEventData, error) {
	return s.events.QueryReviewEvents(ctx, sessionID)
}

func (s *Service) appendStart(ctx context.Context, id string, kind Kind) {
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: id,
		Kind:      string(kind),
		Action:    store.ActionStart,
	})
	if err != nil {
		s.log.Error("append session start", "session_id", id, "error", err)
	}
}

func (s *Service) appendEnd(ctx context.Context, id string, kind Kind, sum *SessionSummary) {
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    id,
		Kind:         string(kind),
		Action:       store.ActionEnd,
		Questions:    sum.TotalQuestions,
		Correct:      sum.TotalCorrect,
		XP:           sum.XP,
		DurationSecs: int(sum.Duration.Seconds()),
	})
	if err != nil {
		s.log.Error("append session end", "session_id", id, "error", err)
		return
	}
	s.log.Info("session finished",
		"session_id", id,
		"kind", string(kind),
		"questions", sum.TotalQuestions,
		"xp", sum.XP,
		"duration", fmt.Sprint(sum.Duration.Round(time.Second)))
}
