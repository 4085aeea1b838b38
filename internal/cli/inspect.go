// Package cli: inspect.go implements the "gtcorpus inspect" command.
//
// The inspect command surveys an existing corpus directory without
// modifying it: complete ground-truth pairs, orphaned label files left
// behind by failed copies, bare images missing their label file, and
// per-label sample counts. Results are presented as text, JSON, or YAML
// depending on the --output flag.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/gtcorpus/internal/corpus"
	"github.com/mmr-tortoise/gtcorpus/internal/model"
)

// inspectFlags holds the flag values for the inspect command.
// These are bound to cobra flags in NewInspectCommand.
type inspectFlags struct {
	// output selects the rendering format.
	// Valid values: "text" (default), "json", "yaml".
	output string
}

// NewInspectCommand creates the "inspect" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect <corpus_dir>",
		Short: "Report the pairing health of a corpus directory",
		Long: `Survey a ground-truth corpus directory and report its pairing health.

The report covers complete image/label pairs, orphaned .gt.txt files
whose image copy failed, images missing their label file, and how many
samples each label has.

Examples:
  gtcorpus inspect ./corpus
  gtcorpus inspect ./corpus -o json
  gtcorpus inspect ./corpus -o yaml`,

		Args: cobra.ExactArgs(1),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "text",
		"Output format: text, json, yaml")

	return cmd
}

// runInspect is the main logic function for the inspect command.
// It validates its inputs, surveys the directory, and renders the
// inventory in the requested format.
func runInspect(dirArg string, flags *inspectFlags) error {
	// Step 1: Validate the --output flag before touching the filesystem.
	switch flags.output {
	case "text", "json", "yaml":
	default:
		return model.NewCLIError(model.ExitFailure,
			fmt.Sprintf("invalid output format %q: valid values are text, json, yaml", flags.output))
	}

	// Step 2: Validate the corpus directory.
	if dirArg == "" {
		return model.NewCLIError(model.ExitFailure, "corpus directory must not be empty")
	}
	dir := filepath.Clean(dirArg)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitFailure,
				fmt.Sprintf("corpus directory does not exist: %s", dir))
		}
		return model.WrapCLIError(model.ExitFailure,
			fmt.Sprintf("cannot access corpus directory %s", dir), err)
	}
	if !info.IsDir() {
		return model.NewCLIError(model.ExitFailure,
			fmt.Sprintf("corpus path is not a directory: %s", dir))
	}

	// Step 3: Survey the directory.
	inv, err := corpus.Survey(dir)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "corpus survey failed", err)
	}
	VerboseLog("Surveyed %s: %d pair(s), %d orphaned label(s), %d unpaired image(s)",
		dir, inv.Pairs, len(inv.OrphanedLabels), len(inv.UnpairedImages))

	// Step 4: Render in the requested format.
	return printInventory(inv, flags.output)
}

// printInventory writes the inventory to stdout in the chosen format.
func printInventory(inv *corpus.Inventory, format string) error {
	switch format {
	case "json":
		// MarshalIndent produces human-readable JSON with 2-space indentation.
		data, err := json.MarshalIndent(inv, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitFailure, "failed to encode inventory as JSON", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(inv)
		if err != nil {
			return model.WrapCLIError(model.ExitFailure, "failed to encode inventory as YAML", err)
		}
		fmt.Print(string(data))
	default:
		fmt.Print(FormatInventoryText(inv))
	}
	return nil
}

// FormatInventoryText renders the inventory as a human-readable report:
// a three-line count block, a per-label sample table, and name listings
// for anything orphaned or unpaired.
//
// This function is exported for testing purposes (tested in inspect_test.go).
func FormatInventoryText(inv *corpus.Inventory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pairs:           %d\n", inv.Pairs)
	fmt.Fprintf(&b, "Orphaned labels: %d\n", len(inv.OrphanedLabels))
	fmt.Fprintf(&b, "Unpaired images: %d\n", len(inv.UnpairedImages))

	if len(inv.Labels) > 0 {
		labels := make([]string, 0, len(inv.Labels))
		for label := range inv.Labels {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		b.WriteString("\n")
		fmt.Fprintf(&b, "%-30s %s\n", "LABEL", "SAMPLES")
		for _, label := range labels {
			fmt.Fprintf(&b, "%-30s %d\n", label, inv.Labels[label])
		}
	}

	if len(inv.OrphanedLabels) > 0 {
		b.WriteString("\nOrphaned label files:\n")
		for _, name := range inv.OrphanedLabels {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(inv.UnpairedImages) > 0 {
		b.WriteString("\nUnpaired image files:\n")
		for _, name := range inv.UnpairedImages {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	return b.String()
}
