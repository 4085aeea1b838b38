// Package discover enumerates candidate images beneath an input root.
//
// The walk is deliberately shallow: only files directly inside a
// first-level subdirectory are candidates, because the subdirectory name
// is the label. Files sitting in the root itself have no label and files
// nested deeper have an ambiguous one, so both are skipped.
//
// Candidates are filtered by a fixed, case-insensitive extension
// allow-list (see model.IsImageExt) and returned in lexical order:
// subdirectories sorted by name, then files sorted by name within each.
// The order is load-bearing: later stages number filename collisions,
// and deterministic enumeration keeps that numbering reproducible across
// runs of the same tree.
package discover
