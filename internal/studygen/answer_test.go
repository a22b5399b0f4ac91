package studygen

import (
	"testing"

	"github.com/abhisek/lexiz/internal/vocab"
)

func TestCheckAnswer_Typing(t *testing.T) {
	q := &Question{Type: vocab.ModeTyping, CorrectAnswer: "A red fruit"}
	tests := []struct {
		input string
		want  bool
	}{
		{"A red fruit", true},
		{"  a RED fruit  ", true},
		{"a red", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(q, tt.input); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := &Question{
		Type:          vocab.ModeMultipleChoice,
		CorrectAnswer: "Yellow",
		Options:       []string{"Red", "Yellow", "Orange"},
	}
	tests := []struct {
		input string
		want  bool
	}{
		{"2", true},
		{"1", false},
		{"3", false},
		{"yellow", true},
		{"4", false}, // out of range index falls back to text match
		{"Red", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(q, tt.input); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if q.CorrectIndex() != 1 {
		t.Errorf("CorrectIndex = %d, want 1", q.CorrectIndex())
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	correctPair := &Question{Type: vocab.ModeTrueFalse, PairingCorrect: true}
	wrongPair := &Question{Type: vocab.ModeTrueFalse, PairingCorrect: false}

	tests := []struct {
		q     *Question
		input string
		want  bool
	}{
		{correctPair, "true", true},
		{correctPair, "Y", true},
		{correctPair, "1", true},
		{correctPair, "false", false},
		{wrongPair, "F", true},
		{wrongPair, "no", true},
		{wrongPair, "2", true},
		{wrongPair, "yes", false},
		{wrongPair, "maybe", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.q, tt.input); got != tt.want {
			t.Errorf("CheckAnswer(pairing=%v, %q) = %v, want %v", tt.q.PairingCorrect, tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_NilQuestion(t *testing.T) {
	if CheckAnswer(nil, "anything") {
		t.Error("nil question should never be correct")
	}
}

func TestCheckScramble(t *testing.T) {
	q := &ScrambleQuestion{OriginalSentence: "The quick  brown fox"}
	tests := []struct {
		name  string
		parts []string
		want  bool
	}{
		{"exact order", []string{"The", "quick", "brown", "fox"}, true},
		{"case insensitive", []string{"the", "QUICK", "brown", "fox"}, true},
		{"wrong order", []string{"quick", "The", "brown", "fox"}, false},
		{"missing word", []string{"The", "quick", "fox"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckScramble(q, tt.parts); got != tt.want {
				t.Errorf("CheckScramble(%v) = %v, want %v", tt.parts, got, tt.want)
			}
		})
	}
}
