// Package discover implements the shallow image walk over the input root.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmr-tortoise/gtcorpus/internal/model"
)

// Images returns every recognized image file residing directly inside a
// first-level subdirectory of root, in lexical order (subdirectories by
// name, then files by name). Each result carries the subdirectory name
// as its label.
//
// An empty slice is a valid result: a root with no subdirectories, or
// subdirectories with no recognized images, is not an error. The caller
// decides whether an empty run is a failure.
func Images(root string) ([]model.ImageFile, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", root, err)
	}

	var files []model.ImageFile
	for _, entry := range entries {
		// Only first-level directories contribute candidates. Regular
		// files in the root have no label directory and are skipped.
		if !isDir(root, entry) {
			continue
		}

		label := entry.Name()
		subdir := filepath.Join(root, label)
		children, err := os.ReadDir(subdir)
		if err != nil {
			return nil, fmt.Errorf("failed to read label directory %s: %w", subdir, err)
		}

		for _, child := range children {
			// Nested directories are ignored: the walk stops at one
			// level. Symlinked files still count as candidates.
			if child.IsDir() {
				continue
			}
			rawExt := filepath.Ext(child.Name())
			if !model.IsImageExt(rawExt) {
				continue
			}
			stem := strings.TrimSuffix(child.Name(), rawExt)
			if stem == "" {
				// Dotfiles like ".png" have no stem to pair on.
				continue
			}
			files = append(files, model.ImageFile{
				Path:  filepath.Join(subdir, child.Name()),
				Label: label,
				Stem:  stem,
				Ext:   strings.ToLower(rawExt),
			})
		}
	}
	return files, nil
}

// isDir reports whether entry names a directory, following symlinks so
// that a label directory linked into the input root still counts.
func isDir(root string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}
