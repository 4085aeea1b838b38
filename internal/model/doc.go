// Package model defines the domain types and value objects for the
// gtcorpus CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (ImageFile, PairResult, RunSummary) are transient values that
// live for a single run; the only durable state is the output directory
// itself, whose contents double as the collision record consulted by the
// next run.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// plus the shared naming vocabulary: the ground-truth file suffix, the
// image extension allow-list, and the base-name derivation used when
// seeding the output-name registry.
package model
