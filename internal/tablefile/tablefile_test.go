package tablefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/vocab"
)

const spanishYAML = `
id: spanish
name: Spanish basics
columns:
  - id: es
    name: Spanish
  - id: en
    name: English
rows:
  - cols: {es: perro, en: dog}
  - id: cat
    cols: {es: gato, en: cat}
relations:
  - id: es-en
    name: Spanish to English
    question: [es]
    answer: [en]
    modes: [Typing, multiple_choice, flashcards]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	tbl, err := Load(writeFile(t, "spanish.yaml", spanishYAML))
	require.NoError(t, err)

	assert.Equal(t, "spanish", tbl.ID)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "spanish-1", tbl.Rows[0].ID, "missing row IDs are generated")
	assert.Equal(t, "cat", tbl.Rows[1].ID)
	assert.Equal(t, "perro", tbl.Rows[0].Cols["es"])

	rel, ok := tbl.Relation("es-en")
	require.True(t, ok)
	assert.Equal(t, []string{"es"}, rel.QuestionColumnIDs)
	assert.True(t, rel.Supports(vocab.ModeTyping), "mode names are case-insensitive")
	assert.True(t, rel.Supports(vocab.ModeFlashcards))
}

func TestLoad_JSON(t *testing.T) {
	body := `{
  "id": "fr",
  "name": "French",
  "columns": [{"id": "fr", "name": "French"}, {"id": "en", "name": "English"}],
  "rows": [{"id": "r1", "cols": {"fr": "chien", "en": "dog"}}],
  "relations": [{
    "id": "fr-en", "name": "French to English",
    "question_column_ids": ["fr"], "answer_column_ids": ["en"],
    "compatible_modes": ["true_false"]
  }]
}`
	tbl, err := Load(writeFile(t, "fr.json", body))
	require.NoError(t, err)
	assert.Equal(t, "French", tbl.Name)
	assert.Len(t, tbl.Rows, 1)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "words.csv", "es,en\nperro,dog\n"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoad_InvalidTable(t *testing.T) {
	body := `
id: broken
name: Broken
columns:
  - id: es
    name: Spanish
relations:
  - id: r
    name: R
    question: [missing]
    answer: [es]
    modes: [typing]
`
	_, err := Load(writeFile(t, "broken.yml", body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_SchemaViolation(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
	}{
		{
			name: "columns not a list",
			file: "bad.yaml",
			body: "id: bad\nname: Bad\ncolumns: es\n",
		},
		{
			name: "relation missing modes",
			file: "bad.yaml",
			body: `
id: bad
name: Bad
columns:
  - {id: es, name: Spanish}
relations:
  - {id: r, name: R, question: [es]}
`,
		},
		{
			name: "yaml relation keys in a json file",
			file: "bad.json",
			body: `{"id": "bad", "name": "Bad",
  "columns": [{"id": "es", "name": "Spanish"}],
  "relations": [{"id": "r", "name": "R", "question": ["es"], "modes": ["typing"]}]}`,
		},
		{
			name: "empty document",
			file: "empty.yaml",
			body: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.file, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not match schema")
		})
	}
}

func TestLoad_NumericCellsPassSchema(t *testing.T) {
	body := `
id: nums
name: Numbers
columns:
  - {id: n, name: Number}
  - {id: w, name: Word}
rows:
  - cols: {n: 1, w: one}
relations:
  - {id: n-w, name: Number to word, question: [n], answer: [w], modes: [typing]}
`
	tbl, err := Load(writeFile(t, "nums.yaml", body))
	require.NoError(t, err)
	assert.Equal(t, "1", tbl.Rows[0].Cols["n"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCarryStats(t *testing.T) {
	existing := &vocab.Table{Rows: []vocab.Row{
		{ID: "a", Stats: vocab.RowStats{Correct: 3, FlashcardStatus: vocab.StatusGood}},
		{ID: "gone", Stats: vocab.RowStats{Correct: 9}},
	}}
	incoming := &vocab.Table{Rows: []vocab.Row{{ID: "a"}, {ID: "new"}}}

	CarryStats(incoming, existing)
	assert.Equal(t, 3, incoming.Rows[0].Stats.Correct)
	assert.Equal(t, vocab.StatusGood, incoming.Rows[0].Stats.FlashcardStatus)
	assert.Zero(t, incoming.Rows[1].Stats.Correct)

	CarryStats(incoming, nil)
}
