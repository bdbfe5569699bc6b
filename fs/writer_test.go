package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/textconv"
	"github.com/fwojciec/textconv/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertedPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "txt extension",
			path: "notes/draft.txt",
			want: "notes/draft_converted.md",
		},
		{
			name: "md extension",
			path: "README.md",
			want: "README_converted.md",
		},
		{
			name: "no extension",
			path: "notes/draft",
			want: "notes/draft_converted.md",
		},
		{
			name: "dotted directory keeps its dot",
			path: "v1.2/notes.txt",
			want: "v1.2/notes_converted.md",
		},
		{
			name: "only last extension is stripped",
			path: "archive.tar.gz",
			want: "archive.tar_converted.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.ConvertedPath(tt.path))
		})
	}
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ textconv.OutputWriter = &fs.Writer{}
}

func TestWriter_WriteConverted(t *testing.T) {
	t.Parallel()

	t.Run("writes output next to the source file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "input.txt")

		w := fs.NewWriter()
		dest, err := w.WriteConverted(source, "converted output")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "input_converted.md"), dest)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "converted output", string(content))
	})

	t.Run("overwrites changed destination content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "input.txt")
		dest := filepath.Join(dir, "input_converted.md")
		require.NoError(t, os.WriteFile(dest, []byte("stale output"), 0644))

		w := fs.NewWriter()
		got, err := w.WriteConverted(source, "fresh output")

		require.NoError(t, err)
		assert.Equal(t, dest, got)

		content, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "fresh output", string(content))
	})

	t.Run("skips the write when destination content is unchanged", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "input.txt")
		dest := filepath.Join(dir, "input_converted.md")
		require.NoError(t, os.WriteFile(dest, []byte("same output"), 0644))
		// A read-only destination proves the skip: rewriting it would fail.
		require.NoError(t, os.Chmod(dest, 0444))

		w := fs.NewWriter()
		got, err := w.WriteConverted(source, "same output")

		require.NoError(t, err)
		assert.Equal(t, dest, got)
	})

	t.Run("unwritable destination yields internal error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "missing-parent", "input.txt")

		w := fs.NewWriter()
		_, err := w.WriteConverted(source, "output")

		require.Error(t, err)
		assert.Equal(t, textconv.EINTERNAL, textconv.ErrorCode(err))
	})
}
