package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/flashcard"
	"github.com/abhisek/lexiz/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := context.Background()
		ev, err := env.store.EventRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		tables, err := env.store.TableRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list tables: %w", err)
		}

		fmt.Printf("Total XP: %d\n", ev.XP)
		fmt.Printf("Sessions: %d   Questions: %d   Correct: %d   Flashcard reviews: %d\n\n",
			ev.Sessions, ev.Questions, ev.Correct, ev.Reviews)

		for i := range tables {
			printTableStats(&tables[i])
		}
		return nil
	},
}

func printTableStats(t *vocab.Table) {
	var correct, attempts int
	for _, r := range t.Rows {
		correct += r.Stats.Correct
		attempts += r.Stats.Correct + r.Stats.Incorrect
	}
	acc := "—"
	if attempts > 0 {
		acc = fmt.Sprintf("%.0f%%", float64(correct)/float64(attempts)*100)
	}
	fmt.Printf("%s (%s): %d rows, %d answers, accuracy %s\n", t.Name, t.ID, len(t.Rows), attempts, acc)

	counts := flashcard.StatusCounts(t)
	var parts []string
	for _, st := range append([]vocab.FlashcardStatus{vocab.StatusNew}, vocab.Ratings...) {
		if n := counts[st]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", st.Label(), n))
		}
	}
	if len(parts) > 0 {
		fmt.Printf("  flashcards: %s\n", strings.Join(parts, ", "))
	}
}
