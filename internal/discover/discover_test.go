package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/gtcorpus/internal/model"
)

// writeFile creates a file (and its parent directories) with the given
// content. Content does not matter for discovery; names do.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestImages_BasicTree verifies field derivation for a small labeled tree:
// the label is the parent directory name verbatim, the stem keeps its
// on-disk spelling, and the extension is lower-cased.
func TestImages_BasicTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Apple", "scan_001.PNG"), "png-bytes")
	writeFile(t, filepath.Join(root, "Banana", "photo.jpg"), "jpg-bytes")

	files, err := Images(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, model.ImageFile{
		Path:  filepath.Join(root, "Apple", "scan_001.PNG"),
		Label: "Apple",
		Stem:  "scan_001",
		Ext:   ".png",
	}, files[0], "extension should be lower-cased, stem and label kept verbatim")

	assert.Equal(t, "Banana", files[1].Label)
	assert.Equal(t, "photo", files[1].Stem)
	assert.Equal(t, ".jpg", files[1].Ext)
}

// TestImages_DepthLimiting verifies the walk is exactly one level deep:
// files in the root itself have no label and files nested two levels
// down have an ambiguous one, so both are ignored.
func TestImages_DepthLimiting(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rootlevel.png"), "ignored")
	writeFile(t, filepath.Join(root, "Apple", "kept.png"), "kept")
	writeFile(t, filepath.Join(root, "Apple", "nested", "toodeep.png"), "ignored")

	files, err := Images(root)
	require.NoError(t, err)
	require.Len(t, files, 1, "only the first-level file should be discovered")
	assert.Equal(t, "kept", files[0].Stem)
}

// TestImages_ExtensionFiltering verifies that only the fixed allow-list
// passes, case-insensitively, and that extension-only dotfiles are
// skipped because they have no stem to pair on.
func TestImages_ExtensionFiltering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Label", "a.png"), "x")
	writeFile(t, filepath.Join(root, "Label", "b.TIFF"), "x")
	writeFile(t, filepath.Join(root, "Label", "c.txt"), "x")
	writeFile(t, filepath.Join(root, "Label", "d.webp"), "x")
	writeFile(t, filepath.Join(root, "Label", "noext"), "x")
	writeFile(t, filepath.Join(root, "Label", ".png"), "x")

	files, err := Images(root)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a", files[0].Stem)
	assert.Equal(t, "b", files[1].Stem)
	assert.Equal(t, ".tiff", files[1].Ext)
}

// TestImages_EmptyResults verifies that no subdirectories, or
// subdirectories without recognized images, yield an empty slice and no
// error. Deciding whether that is a failure belongs to the caller.
func TestImages_EmptyResults(t *testing.T) {
	t.Run("no subdirectories", func(t *testing.T) {
		root := t.TempDir()
		files, err := Images(root)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("subdirectories without images", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "Empty"), 0o755))
		writeFile(t, filepath.Join(root, "TextOnly", "readme.txt"), "x")

		files, err := Images(root)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

// TestImages_MissingRoot verifies that an unreadable input root is an
// error, not an empty result.
func TestImages_MissingRoot(t *testing.T) {
	files, err := Images(filepath.Join(t.TempDir(), "does-not-exist"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input directory")
	assert.Nil(t, files)
}

// TestImages_UnreadableLabelDir verifies that a label directory that
// cannot be read aborts discovery with an error instead of being skipped,
// even when other label directories are fine.
func TestImages_UnreadableLabelDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind for root, skipping")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Readable", "a.png"), "x")
	locked := filepath.Join(root, "Locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	files, err := Images(root)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read label directory")
	assert.Nil(t, files)
}

// TestImages_DeterministicOrder verifies lexical enumeration: label
// directories sorted by name, then files sorted by name within each.
// Collision numbering depends on this order being reproducible.
func TestImages_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Zebra", "b.png"), "x")
	writeFile(t, filepath.Join(root, "Zebra", "a.png"), "x")
	writeFile(t, filepath.Join(root, "Apple", "z.png"), "x")
	writeFile(t, filepath.Join(root, "Apple", "m.png"), "x")

	files, err := Images(root)
	require.NoError(t, err)
	require.Len(t, files, 4)

	got := make([]string, len(files))
	for i, f := range files {
		got[i] = f.Label + "/" + f.Stem
	}
	assert.Equal(t, []string{"Apple/m", "Apple/z", "Zebra/a", "Zebra/b"}, got)
}

// TestImages_NestedDirectoriesSkipped verifies that directory entries
// inside a label folder never become candidates, even when their name
// looks like an image.
func TestImages_NestedDirectoriesSkipped(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Label", "decoy.png"), 0o755))
	writeFile(t, filepath.Join(root, "Label", "real.png"), "x")

	files, err := Images(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "real", files[0].Stem)
}

// TestImages_FollowsSymlinkedLabelDirs verifies that a label directory
// linked into the input root contributes candidates under the symlink's
// name.
func TestImages_FollowsSymlinkedLabelDirs(t *testing.T) {
	actual := t.TempDir()
	writeFile(t, filepath.Join(actual, "fruit.png"), "x")

	root := t.TempDir()
	require.NoError(t, os.Symlink(actual, filepath.Join(root, "Linked")))

	files, err := Images(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Linked", files[0].Label, "label should be the symlink name, not the target")
	assert.Equal(t, "fruit", files[0].Stem)
}
