// Package cli implements the rondo command-line interface.
//
// The CLI plays the role of the engine's external collaborator: it
// synthesizes a distance matrix in memory (uniform points or a rippled
// ring), hands it to the ils engine, and renders the result. The engine
// itself never reads files or builds matrices from coordinates.
//
// # Commands
//
//   - solve: run iterated local search on a synthetic instance, either as
//     a single run or as a parallel multi-start (--workers)
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command can log without globals.
package cli

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// RootCommand builds the rondo command tree. The --verbose flag switches the
// context logger from info to debug level before any subcommand runs.
func RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "rondo",
		Short:        "Rondo orders cyclic visiting sequences with iterated local search",
		Long:         `Rondo is an anytime iterated-local-search engine for symmetric tour problems. The CLI runs it on synthetic instances; library callers bring their own distance matrix.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("rondo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())

	return root
}
