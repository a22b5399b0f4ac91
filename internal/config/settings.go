package config

import (
	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/vocab"
)

// StudySettings returns quiz settings over sources.
func (c Config) StudySettings(sources []vocab.Source) studygen.Settings {
	return studygen.Settings{
		Type:              studygen.SessionTypeTable,
		Sources:           sources,
		Modes:             append([]vocab.StudyMode(nil), c.Study.Modes...),
		RandomizeModes:    c.Study.RandomizeModes,
		WordSelectionMode: studygen.SelectionAuto,
		WordCount:         c.Study.WordCount,
	}
}

// ScrambleSettings returns scramble settings over sources.
func (c Config) ScrambleSettings(sources []vocab.Source) studygen.ScrambleSettings {
	return studygen.ScrambleSettings{
		Sources:         sources,
		SplitCount:      c.Scramble.SplitCount,
		InteractionMode: studygen.InteractionMode(c.Scramble.InteractionMode),
	}
}
