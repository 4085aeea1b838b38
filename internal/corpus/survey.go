// Package corpus inventories the pairing health of an output directory.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmr-tortoise/gtcorpus/internal/model"
)

// Inventory describes the pairing health of one corpus directory.
// The zero value represents an empty corpus.
type Inventory struct {
	// Pairs is the number of base names holding both an image and a
	// label file.
	Pairs int `json:"pairs" yaml:"pairs"`

	// Labels maps each distinct label text to the number of complete
	// pairs carrying it. Only paired label files are read and counted.
	Labels map[string]int `json:"labels,omitempty" yaml:"labels,omitempty"`

	// OrphanedLabels lists label filenames with no image counterpart,
	// sorted by name.
	OrphanedLabels []string `json:"orphanedLabels,omitempty" yaml:"orphanedLabels,omitempty"`

	// UnpairedImages lists image filenames with no label file of their
	// own, sorted by name: bases lacking a label, plus surplus images
	// where several share one base.
	UnpairedImages []string `json:"unpairedImages,omitempty" yaml:"unpairedImages,omitempty"`
}

// pairEntry collects the filenames a base name owns while the directory
// listing is folded into bases. A well-formed corpus has at most one
// image per base; extras are kept so they can be reported.
type pairEntry struct {
	images []string
	label  string
}

// Survey reads dir once and classifies its entries by base name.
// Subdirectories and files that are neither recognized images nor
// ground-truth label files are ignored. When several images share a
// base, the lexically first one forms the pair and the rest are
// reported as unpaired. Paired label files are read to build the
// per-label sample counts; a label file that cannot be read fails the
// survey.
func Survey(dir string) (*Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory %s: %w", dir, err)
	}

	bases := make(map[string]*pairEntry)
	entryFor := func(base string) *pairEntry {
		if bases[base] == nil {
			bases[base] = &pairEntry{}
		}
		return bases[base]
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, model.GroundTruthSuffix):
			if base := strings.TrimSuffix(name, model.GroundTruthSuffix); base != "" {
				entryFor(base).label = name
			}
		case model.IsImageExt(filepath.Ext(name)):
			if base := model.BaseNameOf(name); base != "" {
				e := entryFor(base)
				e.images = append(e.images, name)
			}
		}
	}

	inv := &Inventory{Labels: make(map[string]int)}
	for _, pair := range bases {
		switch {
		case len(pair.images) > 0 && pair.label != "":
			inv.Pairs++
			content, err := os.ReadFile(filepath.Join(dir, pair.label))
			if err != nil {
				return nil, fmt.Errorf("failed to read label file %s: %w", pair.label, err)
			}
			inv.Labels[string(content)]++
			// A label file pairs with exactly one image.
			inv.UnpairedImages = append(inv.UnpairedImages, pair.images[1:]...)
		case pair.label != "":
			inv.OrphanedLabels = append(inv.OrphanedLabels, pair.label)
		default:
			inv.UnpairedImages = append(inv.UnpairedImages, pair.images...)
		}
	}
	if len(inv.Labels) == 0 {
		inv.Labels = nil
	}
	sort.Strings(inv.OrphanedLabels)
	sort.Strings(inv.UnpairedImages)
	return inv, nil
}
