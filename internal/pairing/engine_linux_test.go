package pairing

import (
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteLabel_RemovesPartialFile verifies the write-side counterpart
// of the partial-copy cleanup: a label write that fails mid-stream leaves
// no partial file behind. A one-byte file size limit fails the write
// after the first byte; the kernel reports EFBIG instead of raising
// SIGXFSZ while the signal is ignored.
func TestWriteLabel_RemovesPartialFile(t *testing.T) {
	var old syscall.Rlimit
	require.NoError(t, syscall.Getrlimit(syscall.RLIMIT_FSIZE, &old))

	signal.Ignore(syscall.SIGXFSZ)
	t.Cleanup(func() { signal.Reset(syscall.SIGXFSZ) })

	require.NoError(t, syscall.Setrlimit(syscall.RLIMIT_FSIZE,
		&syscall.Rlimit{Cur: 1, Max: old.Max}))
	t.Cleanup(func() {
		require.NoError(t, syscall.Setrlimit(syscall.RLIMIT_FSIZE, &old))
	})

	path := filepath.Join(t.TempDir(), "a.gt.txt")
	err := writeLabel(path, "label text well past the one-byte limit")

	require.Error(t, err)
	assert.NoFileExists(t, path, "a failed label write must not leave a partial file")
}
