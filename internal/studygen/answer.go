package studygen

import (
	"strconv"
	"strings"

	"github.com/abhisek/lexiz/internal/vocab"
)

// CheckAnswer compares the learner's input against the question.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - For multiple choice: matches against the option text or index (1-3)
// - For true/false: accepts true/false, t/f, yes/no, y/n, or 1 (True) / 2 (False)
func CheckAnswer(q *Question, input string) bool {
	input = strings.TrimSpace(input)
	if q == nil || input == "" {
		return false
	}

	switch q.Type {
	case vocab.ModeMultipleChoice:
		return checkMultipleChoice(q, input)
	case vocab.ModeTrueFalse:
		said, ok := parseTrueFalse(input)
		return ok && said == q.PairingCorrect
	default:
		return normalize(input) == normalize(q.CorrectAnswer)
	}
}

// checkMultipleChoice checks the learner's answer against MC options.
func checkMultipleChoice(q *Question, input string) bool {
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(q.Options) {
		return normalize(q.Options[idx-1]) == normalize(q.CorrectAnswer)
	}
	return normalize(input) == normalize(q.CorrectAnswer)
}

func parseTrueFalse(input string) (bool, bool) {
	switch normalize(input) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "2":
		return false, true
	}
	return false, false
}

// CheckScramble reports whether parts, joined in order, reproduce the
// original sentence. Whitespace runs are collapsed and case is ignored.
func CheckScramble(q *ScrambleQuestion, parts []string) bool {
	if q == nil || len(parts) == 0 {
		return false
	}
	got := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	want := strings.Join(strings.Fields(q.OriginalSentence), " ")
	return strings.EqualFold(got, want)
}

// CorrectIndex returns the index of the correct option, or -1.
func (q *Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if normalize(opt) == normalize(q.CorrectAnswer) {
			return i
		}
	}
	return -1
}
