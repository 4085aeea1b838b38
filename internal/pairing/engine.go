// Package pairing writes ground-truth pairs into the output directory.
package pairing

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/gtcorpus/internal/model"
	"github.com/mmr-tortoise/gtcorpus/internal/registry"
)

// Engine writes ground-truth pairs for one run. Configure the fields,
// then call Run exactly once; the Engine owns the Registry for the
// duration of that call.
type Engine struct {
	// OutputDir is the flat directory pairs are written into. It must
	// exist before Run is called.
	OutputDir string

	// Registry is the claimed-base-name set, seeded from OutputDir.
	// Required.
	Registry *registry.Registry

	// DryRun resolves and claims names in memory without touching the
	// filesystem. The summary then counts files that would have been
	// processed.
	DryRun bool

	// Observer, when non-nil, receives each PairResult as soon as its
	// file is handled, success or failure. The CLI streams progress and
	// error lines from it.
	Observer func(model.PairResult)
}

// Run processes every candidate in discovery order and returns the
// aggregated summary. Per-file failures are recorded and reported, never
// propagated: Run itself cannot fail once the output directory exists.
func (e *Engine) Run(files []model.ImageFile) model.RunSummary {
	summary := model.RunSummary{Discovered: len(files)}
	for _, file := range files {
		result := e.processFile(file)
		summary.Record(result)
		if e.Observer != nil {
			e.Observer(result)
		}
	}
	return summary
}

// processFile produces one ground-truth pair:
//
//  1. Resolve a collision-free base for the file's stem.
//  2. Write {base}.gt.txt containing the label, byte-exact.
//  3. Claim the base; from here the name is burned even on failure.
//  4. Copy the image bytes to {base}{ext}, preserving mode and mtime.
//
// In dry-run mode only step 1 runs, plus the claim so that subsequent
// resolutions preview the same numbering a real run would produce.
func (e *Engine) processFile(file model.ImageFile) model.PairResult {
	result := model.PairResult{Source: file}
	result.Base = e.Registry.Resolve(file.Stem)

	if e.DryRun {
		e.Registry.Claim(result.Base)
		return result
	}

	labelPath := filepath.Join(e.OutputDir, result.Base+model.GroundTruthSuffix)
	if err := writeLabel(labelPath, file.Label); err != nil {
		result.Err = err
		return result
	}
	result.LabelWritten = true
	e.Registry.Claim(result.Base)

	imagePath := filepath.Join(e.OutputDir, result.Base+file.Ext)
	if err := copyImage(file.Path, imagePath); err != nil {
		result.Err = err
		return result
	}
	return result
}

// writeLabel writes label as the entire content of path: UTF-8 bytes,
// no added newline, exact match to the directory name. O_EXCL turns any
// name that appeared after the registry was seeded into an error rather
// than an overwrite. A write that fails midway removes the partial file;
// the base was never claimed, so it stays usable.
func writeLabel(path, label string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(label); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// copyImage copies src to dst byte-for-byte. The destination is created
// exclusively (no overwrite) with the source's permission bits, and its
// modification time is set to the source's afterwards. A copy that fails
// midway removes the partial destination file.
func copyImage(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	// Metadata carry-over is best-effort: the pair is complete once the
	// bytes are down. Open permissions were already applied at create
	// time; Chmod undoes any umask narrowing.
	_ = os.Chmod(dst, info.Mode().Perm())
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
