package session

import "github.com/abhisek/lexiz/internal/vocab"

// XP awarded for a correct answer, by study mode. Harder recall pays more.
var modeXP = map[vocab.StudyMode]int{
	vocab.ModeTyping:         10,
	vocab.ModeScrambled:      8,
	vocab.ModeMultipleChoice: 5,
	vocab.ModeTrueFalse:      3,
}

// FlashcardXP is awarded for every flashcard rating.
const FlashcardXP = 2

// StreakBonusXP is added when the streak reaches a milestone.
const StreakBonusXP = 5

// BaseStreakThreshold is the first streak milestone.
const BaseStreakThreshold = 5

// XPFor returns the XP for one answer. Wrong answers earn nothing.
func XPFor(mode vocab.StudyMode, correct bool) int {
	if !correct {
		return 0
	}
	return modeXP[mode]
}

// NextStreakThreshold returns the next streak milestone above the current streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}
