// Package registry implements the claimed-base-name set used for
// collision resolution in the output directory.
package registry

import (
	"fmt"
	"os"

	"github.com/mmr-tortoise/gtcorpus/internal/model"
)

// Registry is the set of base names already claimed in the output
// directory, either by files present on disk when the run started or by
// pairs written earlier in the same run.
//
// Registry is not safe for concurrent use. The pipeline is sequential
// and claims must land strictly between one file and the next; sharing
// a Registry across goroutines would need an atomic check-and-claim.
type Registry struct {
	claimed map[string]bool
}

// New returns an empty Registry with nothing claimed.
func New() *Registry {
	return &Registry{claimed: make(map[string]bool)}
}

// Seed builds a Registry from the current contents of dir. Every entry
// claims the base name derived by model.BaseNameOf, so `x.png`,
// `x.gt.txt`, and a stray `x.anything` all block the base `x`.
// Derivations that reduce to the empty string claim nothing.
func Seed(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory %s: %w", dir, err)
	}
	r := New()
	for _, entry := range entries {
		if base := model.BaseNameOf(entry.Name()); base != "" {
			r.claimed[base] = true
		}
	}
	return r, nil
}

// Claimed reports whether base is already taken.
func (r *Registry) Claimed(base string) bool {
	return r.claimed[base]
}

// Claim marks base as taken. Claims are monotonic: once a base is
// claimed it stays claimed for the lifetime of the Registry.
func (r *Registry) Claim(base string) {
	r.claimed[base] = true
}

// Len returns the number of claimed bases. Used for diagnostics.
func (r *Registry) Len() int {
	return len(r.claimed)
}

// Resolve returns the first free base name for stem: stem itself when
// unclaimed, otherwise stem_N for the smallest N >= 1 whose base is
// free. Because the probe strictly increases N and the registry is
// finite, Resolve always terminates.
//
// Resolve performs no claim. The caller claims the returned base once
// the first write for it succeeds, which keeps half-written bases out
// of the registry while still protecting an orphaned label file's base
// from reuse.
func (r *Registry) Resolve(stem string) string {
	if !r.Claimed(stem) {
		return stem
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", stem, n)
		if !r.Claimed(candidate) {
			return candidate
		}
	}
}
