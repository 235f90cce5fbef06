package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/lsmark/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LogoStatic(currentBadge()))
			fmt.Fprintln(out)
			ver, rev, built := resolveVersion()
			fmt.Fprintf(out, "lsmark %s\n", ver)
			if known(rev) {
				fmt.Fprintf(out, "commit %s\n", rev)
			}
			if known(built) {
				fmt.Fprintf(out, "built %s\n", built)
			}
		},
	}
}

func known(v string) bool {
	return v != "" && v != "unknown"
}

// resolveVersion prefers values set with -ldflags and falls back to the
// module and VCS data embedded by the Go toolchain.
func resolveVersion() (ver, rev, built string) {
	ver = strings.TrimSpace(version)
	rev = strings.TrimSpace(commit)
	built = strings.TrimSpace(date)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return orDev(ver), rev, built
	}
	if (ver == "" || ver == "dev") && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if !known(rev) {
				rev = setting.Value
			}
		case "vcs.time":
			if !known(built) {
				built = setting.Value
			}
		}
	}
	return orDev(ver), rev, built
}

func orDev(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}
