package flashcard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/random"
	"github.com/abhisek/lexiz/internal/vocab"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestSession(queue ...string) *Session {
	return NewSession([]string{"t1"}, []string{"r1"}, queue, t0)
}

func TestRate_GoodMovesToMiddle(t *testing.T) {
	s := newTestSession("A", "B", "C")
	s.Rate(vocab.StatusGood, t0)
	assert.Equal(t, []string{"B", "A", "C"}, s.Queue)
	assert.Equal(t, 0, s.CurrentIndex)

	next, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "B", next)
}

func TestRate_ThreeCardQueue(t *testing.T) {
	tests := []struct {
		status vocab.FlashcardStatus
		want   []string
	}{
		{vocab.StatusAgain, []string{"B", "A", "C"}},
		{vocab.StatusHard, []string{"B", "A", "C"}},    // round(2*0.25) = 1
		{vocab.StatusGood, []string{"B", "A", "C"}},    // round(2*0.5) = 1
		{vocab.StatusEasy, []string{"B", "C", "A"}},    // round(2*0.75) = 2
		{vocab.StatusPerfect, []string{"B", "C", "A"}}, // end of tail
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := newTestSession("A", "B", "C")
			s.Rate(tt.status, t0)
			assert.Equal(t, tt.want, s.Queue)
		})
	}
}

func TestRate_AgainIsAlwaysOneSlotBack(t *testing.T) {
	for n := 2; n <= 30; n++ {
		queue := make([]string, n)
		for i := range queue {
			queue[i] = fmt.Sprintf("c%d", i)
		}
		s := newTestSession(queue...)
		s.Rate(vocab.StatusAgain, t0)
		assert.Equal(t, "c0", s.Queue[1], "queue length %d", n)
		assert.Equal(t, "c1", s.Queue[0], "queue length %d", n)
	}
}

func TestRate_PerfectGoesToEndOfTail(t *testing.T) {
	s := newTestSession("a", "b", "c", "d", "e", "f", "g")
	s.CurrentIndex = 2
	s.Rate(vocab.StatusPerfect, t0)
	assert.Equal(t, []string{"a", "b", "d", "e", "f", "g", "c"}, s.Queue)
	assert.Equal(t, 2, s.CurrentIndex)
}

func TestInsertOffset(t *testing.T) {
	tests := []struct {
		status    vocab.FlashcardStatus
		remaining int
		want      int
	}{
		{vocab.StatusAgain, 0, 1},
		{vocab.StatusAgain, 100, 1},
		{vocab.StatusHard, 9, 2},
		{vocab.StatusHard, 1, 0},
		{vocab.StatusGood, 9, 5},
		{vocab.StatusEasy, 9, 7},
		{vocab.StatusPerfect, 9, 9},
		{vocab.StatusNew, 9, 1},
		{"bogus", 9, 1},
	}
	for _, tt := range tests {
		got := InsertOffset(tt.status, tt.remaining)
		assert.Equal(t, tt.want, got, "InsertOffset(%q, %d)", tt.status, tt.remaining)
	}
}

func TestRate_LastCardStaysInBounds(t *testing.T) {
	s := newTestSession("A", "B", "C")
	s.CurrentIndex = 2
	s.Rate(vocab.StatusAgain, t0)
	assert.Equal(t, []string{"A", "B", "C"}, s.Queue)
	assert.Equal(t, 2, s.CurrentIndex)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "C", cur)
}

func TestRate_SingleCard(t *testing.T) {
	s := newTestSession("only")
	for _, st := range vocab.Ratings {
		s.Rate(st, t0)
		assert.Equal(t, []string{"only"}, s.Queue)
		assert.Equal(t, 0, s.CurrentIndex)
	}
	assert.Equal(t, len(vocab.Ratings), s.SessionEncounters)
}

func TestRate_EmptyQueueIsNoop(t *testing.T) {
	s := newTestSession()
	s.Rate(vocab.StatusGood, t0)
	assert.Empty(t, s.History)
	assert.Zero(t, s.SessionEncounters)
	assert.True(t, s.Done())
}

func TestRate_CountsEncountersAndHistory(t *testing.T) {
	s := newTestSession("A", "B", "C", "D")
	src := random.New(5)
	n := 25
	for i := 0; i < n; i++ {
		st, _ := random.Pick(src, vocab.Ratings)
		s.Rate(st, t0.Add(time.Duration(i)*time.Second))
	}
	assert.Equal(t, n, s.SessionEncounters)
	assert.Len(t, s.History, n)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, s.Queue, "ratings only reorder the queue")
}

func TestRate_RecordsHistory(t *testing.T) {
	s := newTestSession("A", "B")
	s.Rate(vocab.StatusHard, t0)
	// round(1*0.25) = 0: with a one-card tail Hard leaves A at the head.
	assert.Equal(t, []string{"A", "B"}, s.Queue)
	s.Rate(vocab.StatusEasy, t0.Add(time.Minute))
	assert.Equal(t, []string{"B", "A"}, s.Queue)

	require.Len(t, s.History, 2)
	assert.Equal(t, Review{RowID: "A", Status: vocab.StatusHard, Timestamp: t0}, s.History[0])
	assert.Equal(t, "A", s.History[1].RowID)
	assert.Equal(t, vocab.StatusEasy, s.History[1].Status)
}

func TestDone_AfterEveryCardSeen(t *testing.T) {
	s := newTestSession("A", "B", "C")
	for i := 0; i < 3; i++ {
		assert.False(t, s.Done())
		s.Rate(vocab.StatusPerfect, t0)
	}
	assert.True(t, s.Done())
	assert.Equal(t, 3, s.Seen())
}

func TestNewSession_CopiesInputs(t *testing.T) {
	queue := []string{"A", "B"}
	s := NewSession([]string{"t2", "t1"}, []string{"r1"}, queue, t0)
	s.Rate(vocab.StatusPerfect, t0)
	assert.Equal(t, []string{"A", "B"}, queue)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "t1,t2|r1", s.Key())
	assert.Equal(t, 5*time.Minute, s.Elapsed(t0.Add(5*time.Minute)))
}
