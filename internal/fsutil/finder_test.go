package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/blocksched/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"b/two.hcl":        "",
		"a/one.hcl":        "",
		"a/deep/three.hcl": "",
		"a/notes.txt":      "",
		"top.hcl":          "",
	})
	rel := func(files []string) []string {
		out := make([]string, len(files))
		for i, f := range files {
			r, err := filepath.Rel(dir, f)
			require.NoError(t, err)
			out[i] = filepath.ToSlash(r)
		}
		return out
	}

	files, err := FindFiles([]string{dir}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/deep/three.hcl", "a/one.hcl", "b/two.hcl", "top.hcl"}, rel(files))

	files, err = FindFiles([]string{
		filepath.Join(dir, "top.hcl"),
		filepath.Join(dir, "a", "notes.txt"),
		filepath.Join(dir, "missing"),
		dir,
	}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"top.hcl", "a/deep/three.hcl", "a/one.hcl", "b/two.hcl"}, rel(files), "first occurrence wins")

	assert.Panics(t, func() { _, _ = FindFiles([]string{dir}, "") })
}
