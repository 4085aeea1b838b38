// Package corpus provides read-only analysis of a ground-truth output
// directory.
//
// A healthy corpus holds exactly two files per base name: an image and a
// {base}.gt.txt label file. Failed runs can leave orphaned label files
// behind (the text write succeeded, the image copy did not), and users
// sometimes drop bare images into the directory by hand. Survey
// classifies every entry into complete pairs, orphaned labels, and
// unpaired images, and counts samples per label so imbalanced training
// sets are visible before an OCR trainer is pointed at them.
//
// Survey never modifies the directory it reads.
package corpus
