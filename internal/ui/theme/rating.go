package theme

import (
	"image/color"

	"github.com/abhisek/lexiz/internal/vocab"
)

// RatingColor returns the display color for a flashcard status.
func RatingColor(s vocab.FlashcardStatus) color.Color {
	switch s {
	case vocab.StatusAgain:
		return Error
	case vocab.StatusHard:
		return Accent
	case vocab.StatusGood:
		return Secondary
	case vocab.StatusEasy:
		return Success
	case vocab.StatusPerfect:
		return ArcadeYellow
	default:
		return TextDim
	}
}
