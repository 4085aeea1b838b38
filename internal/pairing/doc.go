// Package pairing implements the flatten-and-pair engine, the core of
// the gtcorpus CLI.
//
// For each discovered image the engine resolves a collision-free output
// base name, writes the label text to {base}.gt.txt, and copies the
// image bytes to {base}{ext}, producing one ground-truth pair per input
// file in a single flat directory.
//
// Write order is fixed: the label text first (cheap), then the image
// copy. The base is claimed in the registry as soon as the text write
// succeeds, so a failed copy leaves the base claimed and later
// candidates probe past it instead of reusing a half-written name. The
// orphaned label file is kept on disk as a visible trace of the failure;
// the partial image, which is useless, is removed.
//
// One file's failure never stops the run. Every candidate yields a
// PairResult, failures are reported through the observer callback, and
// the aggregate RunSummary decides the process exit code.
package pairing
