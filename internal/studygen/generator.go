package studygen

import (
	"slices"
	"strings"

	"github.com/abhisek/lexiz/internal/random"
	"github.com/abhisek/lexiz/internal/vocab"
)

// quizModes are the modes GenerateStudySession can produce.
var quizModes = map[vocab.StudyMode]bool{
	vocab.ModeMultipleChoice: true,
	vocab.ModeTyping:         true,
	vocab.ModeTrueFalse:      true,
}

// binding is one relation a row can be asked through.
type binding struct {
	relation *vocab.Relation
	modes    []vocab.StudyMode
	question string
	answer   string
}

// candidate is one eligible row with every selected relation that can ask it.
type candidate struct {
	table    *vocab.Table
	row      *vocab.Row
	bindings []binding
}

// GenerateStudySession builds the questions for a quiz session.
//
// Sampling is over rows: a row reachable through several selected relations
// is asked at most once, through a relation picked when its question is built.
// Missing tables or relations, relations that support none of the requested
// modes, and rows with a blank prompt or answer all contribute nothing. This
// also applies in manual mode, so a listed row whose prompt or answer is
// blank under every selected relation is left out.
// The result is never padded: fewer eligible rows than WordCount yields
// one question per eligible row. A nil src uses the default source.
func GenerateStudySession(tables []vocab.Table, settings Settings, src random.Source) []Question {
	if len(settings.Sources) == 0 || settings.WordCount <= 0 {
		return nil
	}
	if src == nil {
		src = random.Default()
	}

	candidates := collectCandidates(tables, settings)
	picked := random.Sample(src, len(candidates), settings.WordCount)

	questions := make([]Question, 0, len(picked))
	for _, idx := range picked {
		c := candidates[idx]
		b, mode := pickBinding(src, c.bindings, settings.Modes, settings.RandomizeModes)
		questions = append(questions, buildQuestion(src, c.table, c.row, b, mode))
	}
	return questions
}

// collectCandidates resolves sources into eligible rows, one candidate per
// (table, row), in source order.
func collectCandidates(tables []vocab.Table, settings Settings) []candidate {
	var allowed map[string]bool
	manual := settings.WordSelectionMode == SelectionManual
	if manual {
		allowed = make(map[string]bool, len(settings.ManualWordIDs))
		for _, id := range settings.ManualWordIDs {
			allowed[id] = true
		}
	}

	type rowKey struct{ table, row string }
	type relKey struct{ table, relation string }
	index := make(map[rowKey]int)
	usedRel := make(map[relKey]bool)

	var out []candidate
	for _, src := range settings.Sources {
		tbl, ok := vocab.FindTable(tables, src.TableID)
		if !ok {
			continue
		}
		rel, ok := tbl.Relation(src.RelationID)
		if !ok {
			continue
		}
		rk := relKey{tbl.ID, rel.ID}
		if usedRel[rk] {
			continue
		}
		usedRel[rk] = true

		modes := usableModes(rel, settings.Modes)
		if len(modes) == 0 {
			continue
		}

		for i := range tbl.Rows {
			row := &tbl.Rows[i]
			if manual && !allowed[row.ID] {
				continue
			}
			question := strings.Join(row.Values(rel.QuestionColumnIDs), AnswerSeparator)
			answer := answerFor(row, rel)
			if question == "" || answer == "" {
				continue
			}
			b := binding{relation: rel, modes: modes, question: question, answer: answer}

			k := rowKey{tbl.ID, row.ID}
			if at, ok := index[k]; ok {
				out[at].bindings = append(out[at].bindings, b)
				continue
			}
			index[k] = len(out)
			out = append(out, candidate{table: tbl, row: row, bindings: []binding{b}})
		}
	}
	return out
}

// usableModes intersects the requested modes with what the relation supports,
// keeping the requested order.
func usableModes(rel *vocab.Relation, requested []vocab.StudyMode) []vocab.StudyMode {
	var out []vocab.StudyMode
	seen := make(map[vocab.StudyMode]bool)
	for _, m := range requested {
		if !quizModes[m] || seen[m] || !rel.Supports(m) {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// pickBinding chooses the relation and mode for a row. When randomizing
// both are uniform; otherwise the earliest requested mode wins, asked
// through the first relation that supports it.
func pickBinding(src random.Source, bindings []binding, requested []vocab.StudyMode, randomize bool) (binding, vocab.StudyMode) {
	if randomize {
		b, _ := random.Pick(src, bindings)
		m, _ := random.Pick(src, b.modes)
		return b, m
	}
	for _, m := range requested {
		for _, b := range bindings {
			if slices.Contains(b.modes, m) {
				return b, m
			}
		}
	}
	return bindings[0], bindings[0].modes[0]
}

func answerFor(row *vocab.Row, rel *vocab.Relation) string {
	return strings.Join(row.Values(rel.AnswerColumnIDs), AnswerSeparator)
}

func buildQuestion(src random.Source, table *vocab.Table, row *vocab.Row, b binding, mode vocab.StudyMode) Question {
	q := Question{
		RowID:         row.ID,
		TableID:       table.ID,
		RelationID:    b.relation.ID,
		QuestionText:  b.question,
		CorrectAnswer: b.answer,
		Type:          vocab.ModeTyping,
	}
	for _, colID := range b.relation.QuestionColumnIDs {
		q.QuestionSourceColumnNames = append(q.QuestionSourceColumnNames, table.ColumnName(colID))
	}

	switch mode {
	case vocab.ModeMultipleChoice:
		pool := distractorPool(table, row, b)
		if len(pool) < DistractorCount {
			// Not enough distinct wrong answers; ask it as typing instead.
			return q
		}
		options := []string{b.answer}
		for _, idx := range random.Sample(src, len(pool), DistractorCount) {
			options = append(options, pool[idx])
		}
		random.Shuffle(src, len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		q.Type = vocab.ModeMultipleChoice
		q.Options = options

	case vocab.ModeTrueFalse:
		q.Type = vocab.ModeTrueFalse
		q.Options = []string{"True", "False"}
		q.ShownAnswer = b.answer
		q.PairingCorrect = true
		if src.Float64() < 0.5 {
			if wrong, ok := random.Pick(src, distractorPool(table, row, b)); ok {
				q.ShownAnswer = wrong
				q.PairingCorrect = false
			}
		}
	}
	return q
}

// distractorPool collects the distinct answers of other rows under the same
// relation, excluding anything equal to the correct answer.
func distractorPool(table *vocab.Table, row *vocab.Row, b binding) []string {
	seen := map[string]bool{normalize(b.answer): true}
	var pool []string
	for i := range table.Rows {
		other := &table.Rows[i]
		if other.ID == row.ID {
			continue
		}
		a := answerFor(other, b.relation)
		k := normalize(a)
		if a == "" || seen[k] {
			continue
		}
		seen[k] = true
		pool = append(pool, a)
	}
	return pool
}

// normalize trims and lower-cases s for answer comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
