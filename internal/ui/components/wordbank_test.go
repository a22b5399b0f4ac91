package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordBank_PickAndUndo(t *testing.T) {
	w := NewWordBank([]string{"cat", "the", "sat"})

	assert.True(t, w.Pick(1))
	assert.False(t, w.Pick(1), "a part can only be used once")
	assert.False(t, w.Pick(5))
	assert.True(t, w.Pick(0))
	assert.Equal(t, []string{"the", "cat"}, w.Assembled())
	assert.False(t, w.Complete())

	w.Undo()
	assert.Equal(t, []string{"the"}, w.Assembled())
	assert.True(t, w.Pick(0))
	assert.True(t, w.Pick(2))
	assert.True(t, w.Complete())
	assert.Equal(t, []string{"the", "cat", "sat"}, w.Assembled())
}

func TestWordBank_UndoEmpty(t *testing.T) {
	w := NewWordBank([]string{"a"})
	w.Undo()
	assert.Empty(t, w.Assembled())
}

func TestWordBank_Cursor(t *testing.T) {
	w := NewWordBank([]string{"a", "b", "c"})
	w.Move(-1)
	assert.Equal(t, 0, w.Cursor)
	w.Move(5)
	assert.Equal(t, 2, w.Cursor)
	assert.True(t, w.PickCursor())
	assert.Equal(t, []string{"c"}, w.Assembled())
}
