package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/flashcards"
	"github.com/abhisek/lexiz/internal/screens/study"
	"github.com/abhisek/lexiz/internal/studygen"
	"github.com/abhisek/lexiz/internal/vocab"
)

var errNoSources = errors.New("no matching table relations for this mode")

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(env *appEnv) (screen.Screen, error) {
			tableIDs, sources, err := selectFromFlags(cmd, env, env.cfg.Study.Modes...)
			if err != nil {
				return nil, err
			}
			settings := env.cfg.StudySettings(sources)
			if ids, _ := cmd.Flags().GetStringSlice("word-id"); len(ids) > 0 {
				settings.WordSelectionMode = studygen.SelectionManual
				settings.ManualWordIDs = ids
			}
			return study.NewQuiz(env.svc, tableIDs, settings), nil
		})
	},
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Start a sentence scramble session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(env *appEnv) (screen.Screen, error) {
			tableIDs, sources, err := selectFromFlags(cmd, env, vocab.ModeScrambled)
			if err != nil {
				return nil, err
			}
			return study.NewScramble(env.svc, tableIDs, env.cfg.ScrambleSettings(sources)), nil
		})
	},
}

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Review flashcards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(env *appEnv) (screen.Screen, error) {
			_, sources, err := selectFromFlags(cmd, env, vocab.ModeFlashcards)
			if err != nil {
				return nil, err
			}
			fresh, _ := cmd.Flags().GetBool("fresh")
			tableIDs, relationIDs := vocab.SplitSources(sources)
			return flashcards.New(env.svc, tableIDs, relationIDs, env.cfg.Flashcards.Resume && !fresh), nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{studyCmd, scrambleCmd, flashcardsCmd} {
		c.Flags().StringSlice("table", nil, "Table IDs to draw from (default: all)")
		c.Flags().StringSlice("relation", nil, "Relation IDs to use (default: all)")
	}

	studyCmd.Flags().StringSlice("mode", nil, "Question modes: multiple_choice, typing, true_false")
	studyCmd.Flags().Int("words", 0, "Number of questions")
	studyCmd.Flags().Bool("randomize", true, "Pick a random mode per question")
	studyCmd.Flags().StringSlice("word-id", nil, "Restrict the session to these row IDs")

	scrambleCmd.Flags().Int("split", 0, "Minimum words per sentence")
	scrambleCmd.Flags().String("interaction", "", "How parts are assembled: click or type")

	flashcardsCmd.Flags().Bool("fresh", false, "Ignore the saved queue and start a new order")
}

// selectFromFlags loads the tables named by --table and returns the table
// IDs with the (table, relation) sources matching --relation and modes.
func selectFromFlags(cmd *cobra.Command, env *appEnv, modes ...vocab.StudyMode) ([]string, []vocab.Source, error) {
	tableIDs, _ := cmd.Flags().GetStringSlice("table")
	relationIDs, _ := cmd.Flags().GetStringSlice("relation")

	tables, err := env.svc.LoadTables(context.Background(), tableIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load tables: %w", err)
	}
	sources := selectSources(tables, relationIDs, modes)
	if len(sources) == 0 {
		return nil, nil, errNoSources
	}
	return tableIDs, sources, nil
}

// selectSources keeps the relations of tables that support any of modes
// and, if relationIDs is non-empty, are named in it. Each source appears once.
func selectSources(tables []vocab.Table, relationIDs []string, modes []vocab.StudyMode) []vocab.Source {
	var out []vocab.Source
	for _, mode := range modes {
		for _, src := range vocab.Sources(tables, mode) {
			if len(relationIDs) > 0 && !slices.Contains(relationIDs, src.RelationID) {
				continue
			}
			if !slices.Contains(out, src) {
				out = append(out, src)
			}
		}
	}
	return out
}
