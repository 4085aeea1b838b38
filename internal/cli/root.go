// Package cli implements the cobra-based CLI commands for gtcorpus.
//
// The root command performs the corpus generation itself: it takes the
// input and output directories as positional arguments and runs the
// discover/pair pipeline (see generate.go). The only subcommand is
// inspect, which reports the pairing health of an existing corpus. This
// file defines the root command, the global flags, and the translation
// of errors into process exit codes.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gtcorpus/internal/model"
)

// Global flag variables bound to the root command.
var (
	// quiet suppresses the per-file progress lines and the final summary.
	// The opening banner and error lines still print.
	quiet bool

	// dryRun resolves output names and reports what a run would write
	// without touching the filesystem.
	dryRun bool

	// verbose enables detailed diagnostics on stderr. Bound as a
	// persistent flag so inspect inherits it.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a purely organizational root, this command does the main work:
// running it flattens the labeled input tree into ground-truth pairs in
// the output directory.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "gtcorpus <input_dir> <output_dir>",
		Short: "Build a flat ground-truth corpus for OCR training",
		Long: fmt.Sprintf(`gtcorpus flattens a labeled image tree into a ground-truth training corpus.

Every first-level subdirectory of <input_dir> is a label. Each image found
directly inside a subdirectory is copied into <output_dir> next to a
companion <base>.gt.txt file containing the label verbatim. Name collisions
are resolved with _1, _2, ... suffixes against everything already present
in <output_dir>, so reruns never overwrite earlier output.

Recognized image extensions (case-insensitive): %s.`,
			strings.Join(model.ImageExtensions(), ", ")),

		Args: cobra.ExactArgs(2),

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Errors are formatted by Execute instead.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], args[1])
		},
	}

	// PersistentFlags are inherited by all subcommands; verbose is the
	// only flag that makes sense for both generation and inspection.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Generation-only flags stay local to the root command.
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output (errors still print to stderr)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve output names without writing any files")

	rootCmd.AddCommand(NewInspectCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own exit
// codes; other errors default to exit code 1. The ErrNothingProcessed
// sentinel exits without printing: the summary line has already told
// the user the run produced nothing, and stderr is reserved for actual
// failures.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			if !errors.Is(err, model.ErrNothingProcessed) {
				printError(cliErr.Message, cliErr.Err)
			}
			os.Exit(int(cliErr.Code))
		}

		// Generic error (flag parsing, argument count).
		printError(err.Error(), nil)
		os.Exit(int(model.ExitFailure))
	}
}

// printError writes a fatal error line to stderr in the form
// "Error: <message>" with the underlying cause appended when present.
// Per-file failures during a run do not come through here; the pairing
// observer prints those in their own format.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. This is used throughout the CLI for trace output that helps
// users understand what the run is doing.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
