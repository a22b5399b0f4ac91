package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lexiz version and build details",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, _ := debug.ReadBuildInfo()
		return writeVersion(cmd.OutOrStdout(), readBuild(version, info), versionShort)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version")
}

// buildDetails is what `lexiz version` reports.
type buildDetails struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

// readBuild fills buildDetails from the linker-set version and the
// embedded build info. A module version from `go install` replaces the
// "(devel)" default.
func readBuild(linked string, info *debug.BuildInfo) buildDetails {
	d := buildDetails{Version: linked}
	if info == nil {
		return d
	}
	d.GoVersion = info.GoVersion
	if d.Version == "(devel)" && info.Main.Version != "" {
		d.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			d.Revision = s.Value
		case "vcs.modified":
			d.Modified = s.Value == "true"
		}
	}
	return d
}

func writeVersion(w io.Writer, d buildDetails, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, d.Version)
		return err
	}
	if _, err := fmt.Fprintf(w, "lexiz %s\n", d.Version); err != nil {
		return err
	}
	if d.Revision != "" {
		rev := d.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if d.Modified {
			rev += " (modified)"
		}
		if _, err := fmt.Fprintf(w, "  commit: %s\n", rev); err != nil {
			return err
		}
	}
	if d.GoVersion != "" {
		if _, err := fmt.Fprintf(w, "  go:     %s\n", d.GoVersion); err != nil {
			return err
		}
	}
	return nil
}
