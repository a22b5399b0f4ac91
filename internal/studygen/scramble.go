package studygen

import (
	"slices"
	"strings"

	"github.com/abhisek/lexiz/internal/random"
	"github.com/abhisek/lexiz/internal/vocab"
)

// maxScrambleAttempts bounds reshuffling when a shuffle reproduces the original order.
const maxScrambleAttempts = 5

// GenerateScrambleSession builds sentence-unscrambling questions.
//
// A row qualifies when its prompt text has at least SplitCount words.
// Every word of a qualifying sentence is shuffled; none are dropped.
// Unknown tables or relations yield no questions. A nil src uses the
// default source.
func GenerateScrambleSession(tables []vocab.Table, settings ScrambleSettings, src random.Source) []ScrambleQuestion {
	if len(settings.Sources) == 0 {
		return nil
	}
	if src == nil {
		src = random.Default()
	}
	split := settings.SplitCount
	if split < 1 {
		split = 1
	}

	type key struct{ table, relation, row string }
	seen := make(map[key]bool)

	var out []ScrambleQuestion
	for _, s := range settings.Sources {
		tbl, ok := vocab.FindTable(tables, s.TableID)
		if !ok {
			continue
		}
		rel, ok := tbl.Relation(s.RelationID)
		if !ok || len(rel.QuestionColumnIDs) == 0 {
			continue
		}
		for i := range tbl.Rows {
			row := &tbl.Rows[i]
			k := key{tbl.ID, rel.ID, row.ID}
			if seen[k] {
				continue
			}
			sentence := strings.Join(row.Values(rel.QuestionColumnIDs), " ")
			words := strings.Fields(sentence)
			if len(words) == 0 || len(words) < split {
				continue
			}
			seen[k] = true
			out = append(out, ScrambleQuestion{
				RowID:            row.ID,
				TableID:          tbl.ID,
				RelationID:       rel.ID,
				OriginalSentence: sentence,
				ScrambledParts:   scrambleWords(src, words),
				InteractionMode:  settings.InteractionMode,
			})
		}
	}

	random.Shuffle(src, len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// scrambleWords returns a shuffled copy of words that differs from the
// original order whenever the sentence has at least two distinct words.
func scrambleWords(src random.Source, words []string) []string {
	parts := slices.Clone(words)
	shuffle := func() {
		random.Shuffle(src, len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })
	}
	shuffle()
	if !hasDistinct(words) {
		return parts
	}
	for attempt := 1; attempt < maxScrambleAttempts && slices.Equal(parts, words); attempt++ {
		shuffle()
	}
	if slices.Equal(parts, words) {
		// A rotation of a sequence with two distinct values never equals it.
		parts = append(parts[1:], parts[0])
	}
	return parts
}

func hasDistinct(words []string) bool {
	for _, w := range words[1:] {
		if w != words[0] {
			return true
		}
	}
	return false
}
