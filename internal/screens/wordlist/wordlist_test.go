package wordlist

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/vocab"
)

func testTables() []vocab.Table {
	cols := []vocab.Column{{ID: "es", Name: "Spanish"}, {ID: "en", Name: "English"}, {ID: "note", Name: "Note"}}
	return []vocab.Table{
		{
			ID: "nouns", Name: "Nouns", Columns: cols,
			Rows: []vocab.Row{
				{ID: "n1", Cols: map[string]string{"es": "perro", "en": "dog"}, Stats: vocab.RowStats{Correct: 3, Incorrect: 1}},
				{ID: "n2", Cols: map[string]string{"es": "gato", "en": "cat"}},
			},
		},
		{ID: "empty", Name: "Empty", Columns: cols},
		{
			ID: "verbs", Name: "Verbs", Columns: cols,
			Rows: []vocab.Row{
				{ID: "v1", Cols: map[string]string{"es": "comer", "en": "to eat", "note": "regular"},
					Stats: vocab.RowStats{FlashcardStatus: vocab.StatusEasy, FlashcardEncounters: 2}},
			},
		},
	}
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestNavigationSkipsHeaders(t *testing.T) {
	s := New(testTables())
	assert.Equal(t, 1, s.cursor, "cursor starts on the first word")

	s.Update(key(tea.KeyDown))
	assert.Equal(t, "n2", s.rows[s.cursor].word.ID)

	s.Update(key(tea.KeyDown))
	assert.Equal(t, "v1", s.rows[s.cursor].word.ID, "empty table is skipped")

	s.Update(key(tea.KeyDown))
	assert.Equal(t, "v1", s.rows[s.cursor].word.ID)

	s.Update(key(tea.KeyUp))
	assert.Equal(t, "n2", s.rows[s.cursor].word.ID)
}

func TestTableJumps(t *testing.T) {
	s := New(testTables())
	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyTab))
	assert.Equal(t, "v1", s.rows[s.cursor].word.ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, "n1", s.rows[s.cursor].word.ID, "shift+tab lands on the first word of the previous table")
}

func TestEnterPushesDetail(t *testing.T) {
	s := New(testTables())
	_, cmd := s.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "perro · dog", msg.Screen.Title())

	view := msg.Screen.View(80, 30)
	assert.Contains(t, view, "Nouns")
	assert.Contains(t, view, "75%")
	assert.Contains(t, view, "New")
}

func TestViewRendersRows(t *testing.T) {
	s := New(testTables())
	view := s.View(80, 20)
	assert.Contains(t, view, "NOUNS  (2)")
	assert.Contains(t, view, "perro · dog")
	assert.Contains(t, view, "Easy")
	assert.Contains(t, New(nil).View(80, 20), "No tables yet")
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, "—", Accuracy(vocab.RowStats{}))
	assert.Equal(t, "50%", Accuracy(vocab.RowStats{Correct: 1, Incorrect: 1}))
}
