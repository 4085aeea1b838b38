// Package cli: generate.go implements the root command's run, the
// flatten-and-pair operation itself.
//
// Orchestration steps:
//  1. Normalize and validate the input directory (before any side effect)
//  2. Create the output directory, parents included
//  3. Discover candidate images one level below the input root
//  4. Seed the output-name registry from the output directory
//  5. Run the pairing engine, streaming per-file progress and errors
//  6. Print the summary and map an empty run to the failure exit code
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/gtcorpus/internal/discover"
	"github.com/mmr-tortoise/gtcorpus/internal/model"
	"github.com/mmr-tortoise/gtcorpus/internal/pairing"
	"github.com/mmr-tortoise/gtcorpus/internal/registry"
)

// runGenerate executes one corpus-building run from inputArg into
// outputArg. It returns a *model.CLIError for fatal pre-flight problems
// and model.ErrNothingProcessed when the run completed without producing
// a single pair; per-file failures are reported as they happen and only
// influence the exit code through the processed count.
func runGenerate(inputArg, outputArg string) error {
	// Step 1: normalize and validate the input directory. The check runs
	// before the output directory is created so a doomed run has no side
	// effects.
	if inputArg == "" {
		return model.NewCLIError(model.ExitFailure, "input directory must not be empty")
	}
	if outputArg == "" {
		return model.NewCLIError(model.ExitFailure, "output directory must not be empty")
	}
	inputDir := filepath.Clean(inputArg)
	outputDir := filepath.Clean(outputArg)

	info, err := os.Stat(inputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCLIError(model.ExitFailure,
				fmt.Sprintf("input directory does not exist: %s", inputDir))
		}
		return model.WrapCLIError(model.ExitFailure,
			fmt.Sprintf("cannot access input directory %s", inputDir), err)
	}
	if !info.IsDir() {
		return model.NewCLIError(model.ExitFailure,
			fmt.Sprintf("input path is not a directory: %s", inputDir))
	}

	// Step 2: create the output directory. Everything after this point
	// may write into it.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return model.WrapCLIError(model.ExitFailure,
			fmt.Sprintf("failed to create output directory %s", outputDir), err)
	}

	// The banner is not gated by --quiet; only progress lines and the
	// summary are.
	fmt.Println("Ground-Truth generation beginning...")

	// Step 3: discover candidates. Discovery completes before any pair
	// is written; collision numbering depends on its order.
	files, err := discover.Images(inputDir)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "image discovery failed", err)
	}
	VerboseLog("Discovered %d candidate image file(s) under %s", len(files), inputDir)

	// Step 4: seed the registry with every base name already present so
	// this run never reuses one.
	reg, err := registry.Seed(outputDir)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to read existing output names", err)
	}
	VerboseLog("Seeded output-name registry with %d existing base name(s)", reg.Len())

	// Step 5: pair and copy. The observer streams one line per file as
	// it is handled.
	engine := &pairing.Engine{
		OutputDir: outputDir,
		Registry:  reg,
		DryRun:    dryRun,
		Observer:  reportResult,
	}
	summary := engine.Run(files)

	// Step 6: summary and exit status. An empty run is not an error to
	// report, but scripts need to see it in the exit code.
	if !quiet {
		if dryRun {
			fmt.Printf("\n[dry-run] Would process %d image files.\n", summary.Processed)
		} else {
			fmt.Printf("\nDone! Processed %d image files.\n", summary.Processed)
		}
	}
	if summary.Failed > 0 {
		VerboseLog("%d file(s) failed, %d of those left an orphaned label file",
			summary.Failed, summary.Orphaned)
	}
	if summary.Processed == 0 {
		return model.ErrNothingProcessed
	}
	return nil
}

// reportResult prints the per-file outcome as the engine hands it over.
// Failures always go to stderr, even under --quiet; progress lines honor
// the quiet flag and switch wording in dry-run mode.
func reportResult(r model.PairResult) {
	if !r.Succeeded() {
		fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", r.Source.Path, r.Err)
		return
	}
	if r.Base != r.Source.Stem {
		VerboseLog("collision: %s resolved to %s", r.Source.Stem, r.Base)
	}
	if quiet {
		return
	}
	if dryRun {
		fmt.Printf("Would process: %s -> %s (%s)\n", r.Source.Name(), r.Source.Label, r.Base+r.Source.Ext)
	} else {
		fmt.Printf("Processed: %s -> %s\n", r.Source.Name(), r.Source.Label)
	}
}
