package flashcards

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/flashcard"
	"github.com/abhisek/lexiz/internal/random"
	"github.com/abhisek/lexiz/internal/router"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testTable() *vocab.Table {
	return &vocab.Table{
		ID:      "words",
		Name:    "Words",
		Columns: []vocab.Column{{ID: "term", Name: "Term"}, {ID: "def", Name: "Definition"}},
		Rows: []vocab.Row{
			{ID: "w1", Cols: map[string]string{"term": "apple", "def": "a fruit"}},
			{ID: "w2", Cols: map[string]string{"term": "run", "def": "move fast"}},
		},
		Relations: []vocab.Relation{{
			ID: "cards", Name: "Cards",
			QuestionColumnIDs: []string{"term"}, AnswerColumnIDs: []string{"def"},
			CompatibleModes: []vocab.StudyMode{vocab.ModeFlashcards},
		}},
	}
}

func testScreen(t *testing.T) (*FlashcardScreen, *store.Store) {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.TableRepo().Save(context.Background(), testTable()))

	svc := sess.NewService(st.TableRepo(), st.QueueRepo(), st.EventRepo(), nil, random.New(7))
	f := New(svc, nil, nil, true)
	f.Update(f.Init()())
	require.NotNil(t, f.deck, "deck should load: %s", f.errMsg)
	return f, st
}

func TestFlashcardScreen_FlipAndRate(t *testing.T) {
	f, st := testScreen(t)
	first, ok := f.deck.Current()
	require.True(t, ok)

	assert.Contains(t, f.View(100, 30), first.Front)
	assert.NotContains(t, f.View(100, 30), first.Back)

	f.Update(keyPress('3'))
	assert.Zero(t, f.deck.Session.SessionEncounters, "rating needs the card flipped")

	f.Update(keyPress(' '))
	require.True(t, f.flipped)
	assert.Contains(t, f.View(100, 30), first.Back)

	f.Update(keyPress('5'))
	assert.False(t, f.flipped)
	assert.Equal(t, 1, f.deck.Session.SessionEncounters)

	f.Update(keyPress(' '))
	_, cmd := f.Update(keyPress('5'))
	require.NotNil(t, cmd, "deck is done once every card has been seen")
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Session Summary", msg.Screen.Title())

	saved, err := st.QueueRepo().Load(context.Background(), flashcard.QueueKey([]string{"words"}, []string{"cards"}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"w1", "w2"}, saved)

	tbl, err := st.TableRepo().Get(context.Background(), "words")
	require.NoError(t, err)
	row, _ := tbl.Row(first.RowID)
	assert.Equal(t, vocab.StatusPerfect, row.Stats.FlashcardStatus)
	assert.True(t, row.Stats.Reviewed)
}

func TestFlashcardScreen_QuitConfirm(t *testing.T) {
	f, _ := testScreen(t)
	assert.True(t, f.CapturesEscape())

	f.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.True(t, f.confirmQuit)
	assert.Contains(t, f.View(80, 24), "End review early?")

	f.Update(keyPress('n'))
	assert.False(t, f.confirmQuit)

	f.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := f.Update(keyPress('y'))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)
}

func TestFlashcardScreen_NoCards(t *testing.T) {
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := sess.NewService(st.TableRepo(), st.QueueRepo(), st.EventRepo(), nil, nil)
	f := New(svc, nil, nil, false)
	f.Update(f.Init()())

	assert.Nil(t, f.deck)
	assert.Contains(t, f.View(80, 24), "No flashcards")
	assert.False(t, f.CapturesEscape())
}

func TestFlashcardScreen_KeyHints(t *testing.T) {
	f, _ := testScreen(t)
	assert.Len(t, f.KeyHints(), 2)
	f.Update(keyPress(' '))
	assert.Len(t, f.KeyHints(), 3)
}
