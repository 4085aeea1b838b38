// Package model defines the domain types for the gtcorpus CLI.
//
// All entities in this package represent the core data passed between the
// discoverer, the output-name registry, and the pairing engine. They are
// plain values: construction happens at discovery time and nothing here
// touches the filesystem.
package model

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// GroundTruthSuffix is the suffix of label text files in the output
// directory. Every processed image produces a companion file named
// {base}.gt.txt whose content is the label, so the suffix participates
// in base-name derivation and collision checks.
const GroundTruthSuffix = ".gt.txt"

// imageExtensions is the fixed allow-list of recognized image file
// extensions. Matching is case-insensitive; keys are stored lower-case
// with the leading dot. The list is deliberately closed: recognizing a
// new format is a code change, not configuration.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".gif":  true,
}

// IsImageExt reports whether ext names a recognized image extension.
// The comparison is case-insensitive; ext must include the leading dot
// (the form returned by filepath.Ext).
func IsImageExt(ext string) bool {
	return imageExtensions[strings.ToLower(ext)]
}

// ImageExtensions returns the recognized extensions in sorted order.
// Used for help text and verbose diagnostics.
func ImageExtensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ImageFile represents one discovered source image. Values are immutable
// once the discoverer hands them to the pairing engine.
type ImageFile struct {
	// Path is the path to the source file as discovered, joined from the
	// input root argument. It is relative whenever the input argument
	// was relative.
	Path string

	// Label is the name of the file's immediate parent directory,
	// verbatim. No case change, no trimming.
	Label string

	// Stem is the filename without its final extension. It is the
	// starting candidate for the output base name.
	Stem string

	// Ext is the file's extension, lower-cased, including the leading
	// dot. The output image keeps this lower-cased form even when the
	// source extension was upper-case.
	Ext string
}

// Name returns the source filename (final path element) as it appeared
// on disk. Progress lines print this, not the full path.
func (f ImageFile) Name() string {
	return filepath.Base(f.Path)
}

// BaseNameOf derives the base name an existing output entry claims.
// A name ending in GroundTruthSuffix claims the name minus that suffix;
// any other name claims the name minus its final extension, and a name
// without an extension claims itself. Names that reduce to the empty
// string (dotfiles such as ".png" or a bare ".gt.txt") claim nothing.
func BaseNameOf(name string) string {
	if strings.HasSuffix(name, GroundTruthSuffix) {
		return strings.TrimSuffix(name, GroundTruthSuffix)
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// PairResult is the per-file outcome of the pairing engine. One value is
// produced for every discovered ImageFile, success or failure, so a run
// can be audited without re-reading the output directory.
type PairResult struct {
	// Source is the input image this result describes.
	Source ImageFile

	// Base is the collision-resolved output base name. Set even on
	// failure, since the failure may have occurred after resolution.
	Base string

	// LabelWritten records whether the {base}.gt.txt write succeeded.
	// When true and Err is non-nil, the run left an orphaned label file
	// behind and the base stays claimed.
	LabelWritten bool

	// Err is the first error encountered while writing this pair.
	// Nil on success.
	Err error
}

// Succeeded reports whether both the label write and the image copy
// completed for this file.
func (r PairResult) Succeeded() bool {
	return r.Err == nil
}

// Orphaned reports whether this failure left a label file without its
// image: the text write succeeded and the copy then failed.
func (r PairResult) Orphaned() bool {
	return r.Err != nil && r.LabelWritten
}

// RunSummary aggregates the per-file results of a run. The processed
// count reflects only files that completed both writes; it is the number
// reported in the final summary line and the basis of the exit code.
type RunSummary struct {
	// Discovered is the number of candidate images handed to the engine.
	Discovered int

	// Processed is the number of complete pairs written (or, in dry-run
	// mode, that would have been written).
	Processed int

	// Failed is the number of candidates that hit an I/O error.
	Failed int

	// Orphaned is the subset of Failed that left a label file behind.
	Orphaned int
}

// Record folds one PairResult into the summary counters.
func (s *RunSummary) Record(r PairResult) {
	if r.Succeeded() {
		s.Processed++
		return
	}
	s.Failed++
	if r.Orphaned() {
		s.Orphaned++
	}
}

// ExitCode defines the CLI exit codes. The external contract is binary:
// a run that produced at least one pair exits 0, everything else exits 1,
// including fatal pre-flight failures. Scripts distinguish outcomes by
// the exit code and the error stream, never by parsing stdout.
type ExitCode int

const (
	// ExitSuccess indicates at least one image file was processed.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates zero files were processed, whether because
	// of a fatal pre-flight error, an empty input, or per-file failures
	// across the board.
	ExitFailure ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ErrNothingProcessed is returned by the root command when a run
// completes without producing a single pair. The CLI exits with
// ExitFailure but prints no error line for it: the summary has already
// reported the zero count, and the error stream is reserved for actual
// failures.
var ErrNothingProcessed = NewCLIError(ExitFailure, "no image files were processed")
