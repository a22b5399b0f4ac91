package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/tablefile"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage vocabulary tables",
}

var tablesImportCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import tables from YAML or JSON files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := context.Background()
		repo := env.store.TableRepo()
		for _, path := range args {
			t, err := tablefile.Load(path)
			if err != nil {
				return err
			}

			existing, err := repo.Get(ctx, t.ID)
			switch {
			case err == nil:
				tablefile.CarryStats(t, existing)
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("read table %s: %w", t.ID, err)
			}

			if err := repo.Save(ctx, t); err != nil {
				return fmt.Errorf("save table %s: %w", t.ID, err)
			}
			env.log.Info("table imported", "id", t.ID, "rows", len(t.Rows), "file", path)
			fmt.Printf("Imported %s (%s): %d rows, %d relations\n", t.ID, t.Name, len(t.Rows), len(t.Relations))
		}
		return nil
	},
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		sums, err := env.store.TableRepo().Summaries(context.Background())
		if err != nil {
			return fmt.Errorf("list tables: %w", err)
		}
		if len(sums) == 0 {
			fmt.Println("No tables yet. Import one with: lexiz tables import FILE")
			return nil
		}

		fmt.Printf("%-20s  %-30s  %6s  %s\n", "ID", "Name", "Rows", "Updated")
		fmt.Println(strings.Repeat("─", 78))
		for _, s := range sums {
			fmt.Printf("%-20s  %-30s  %6d  %s\n",
				truncate(s.ID, 20), truncate(s.Name, 30), s.RowCount,
				s.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var tablesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a table and its learner stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.store.TableRepo().Delete(context.Background(), args[0]); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("table %q not found", args[0])
			}
			return fmt.Errorf("delete table: %w", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesImportCmd)
	tablesCmd.AddCommand(tablesListCmd)
	tablesCmd.AddCommand(tablesDeleteCmd)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
