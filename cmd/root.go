package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/welcome"
)

var rootCmd = &cobra.Command{
	Use:   "lexiz",
	Short: "Vocabulary study in your terminal",
	Long:  "Lexiz is a terminal app for studying vocabulary tables with quizzes, sentence scrambles and flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if noSplash, _ := cmd.Flags().GetBool("no-splash"); noSplash {
			return runApp(cmd, nil)
		}
		return runApp(cmd, func(*appEnv) (screen.Screen, error) {
			return welcome.New(), nil
		})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides LEXIZ_DB env var)")
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/lexiz/config.yaml)")
	pf.String("log-mode", "", "Log mode: dev, prod or off")
	pf.String("log-file", "", "Write logs to this file")

	rootCmd.Flags().Bool("no-splash", false, "Skip the intro screen")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
