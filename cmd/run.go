package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/home"
)

// runApp launches the TUI with the home screen at the bottom of the stack.
// When start is non-nil it builds the first screen shown over home.
func runApp(cmd *cobra.Command, start func(*appEnv) (screen.Screen, error)) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	var first screen.Screen
	if start != nil {
		if first, err = start(env); err != nil {
			return err
		}
	}

	return app.Run(env.svc, home.New(env.svc, *env.cfg), first)
}
