// Package registry tracks the output base names claimed within a run.
//
// The registry is the single source of truth for collision resolution.
// It is seeded once per run from the output directory's current contents
// and then grows monotonically in memory as pairs are written: a base
// name is claimed at most once and never released until the process
// exits. The output directory itself is the only durable record; the
// next run re-seeds from disk and therefore respects everything this
// run wrote.
//
// Image stems and ground-truth stems collapse to the same claimed base
// during seeding, so one membership test covers both files of a pair.
// A lone orphan of either kind (an image without its label file, or the
// reverse) still blocks its base.
package registry
