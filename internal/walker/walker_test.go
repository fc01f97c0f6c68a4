package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticus-lab/go-project-pdf/internal/filter"
	"github.com/porticus-lab/go-project-pdf/internal/testutil"
)

func TestWalk_PreOrderAndPruning(t *testing.T) {
	root := testutil.ExampleProject(t)
	w := New(nil, nil)

	var rels []string
	for dir, err := range w.Walk(root) {
		require.NoError(t, err)
		rels = append(rels, dir.Rel)
	}

	assert.Equal(t, []string{".", "assets", "src"}, rels)
}

func TestWalk_RootDirContents(t *testing.T) {
	root := testutil.ExampleProject(t)
	w := New(nil, nil)

	for dir, err := range w.Walk(root) {
		require.NoError(t, err)
		assert.Equal(t, 0, dir.Depth)
		assert.Equal(t, "project", dir.Name())
		assert.Equal(t, []string{"assets", "src"}, dir.Subdirs)
		assert.Equal(t, []string{"README.md"}, dir.Files)
		break
	}
}

func TestWalk_StopEarly(t *testing.T) {
	root := testutil.ExampleProject(t)
	w := New(nil, nil)

	visited := 0
	for range w.Walk(root) {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)
}

func TestWalk_MissingRoot(t *testing.T) {
	w := New(nil, nil)

	var gotErr error
	for _, err := range w.Walk(filepath.Join(t.TempDir(), "missing")) {
		gotErr = err
	}
	assert.Error(t, gotErr)
}

func TestCollect_ExampleProject(t *testing.T) {
	root := testutil.ExampleProject(t)

	tree, err := New(nil, nil).Collect(root)
	require.NoError(t, err)

	assert.Equal(t, root, tree.Root)
	assert.Equal(t, 3, tree.DirCount())
	assert.Equal(t, 3, tree.FileCount())
	assert.Equal(t, []string{
		"README.md",
		filepath.Join("src", "index.js"),
		filepath.Join("src", "styles.css"),
	}, tree.Files())

	assets := tree.Dirs[1]
	assert.Equal(t, "assets", assets.Rel)
	assert.Equal(t, 1, assets.Depth)
	assert.Empty(t, assets.Files)
	assert.Empty(t, assets.Subdirs)
}

func TestCollect_NestedDepthAndSortedFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"a/b/c/z.ts":        "",
		"a/b/c/m.ts":        "",
		"a/b/c/A.ts":        "",
		"a/b/dist/gone.js":  "",
		"a/coverage/x.json": "",
		"a/b/notes.txt":     "",
	})

	tree, err := New(nil, nil).Collect(root)
	require.NoError(t, err)

	require.Len(t, tree.Dirs, 4)
	deepest := tree.Dirs[3]
	assert.Equal(t, filepath.Join("a", "b", "c"), deepest.Rel)
	assert.Equal(t, 3, deepest.Depth)
	assert.Equal(t, []string{"A.ts", "m.ts", "z.ts"}, deepest.Files)
	assert.Empty(t, tree.Dirs[2].Files, "notes.txt is not an allowed extension")
}

func TestCollect_RootUnderExcludedName(t *testing.T) {
	// Exclusion applies below the root only.
	root := filepath.Join(t.TempDir(), "build", "app")
	testutil.WriteTree(t, root, map[string]string{"index.js": "x"})

	tree, err := New(nil, nil).Collect(root)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.FileCount())
}

func TestCollect_CustomFilter(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"main.go":        "package main",
		"vendor/x/x.go":  "package x",
		"node_modules/y": "",
	})

	tree, err := New(filter.New([]string{".go"}, []string{"vendor"}), nil).Collect(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go"}, tree.Files())
	assert.Equal(t, 2, tree.DirCount(), "node_modules is not excluded by this filter")
}

func TestCollect_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.js")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := New(nil, nil).Collect(file)
	assert.Error(t, err)
}

func TestCollect_Missing(t *testing.T) {
	_, err := New(nil, nil).Collect(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollect_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := t.TempDir()
	outside := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"real.js": "x"})
	testutil.WriteTree(t, outside, map[string]string{"lib/other.js": "y"})

	require.NoError(t, os.Symlink(filepath.Join(root, "real.js"), filepath.Join(root, "link.js")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "lib"), filepath.Join(root, "lib")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.js"), filepath.Join(root, "broken.js")))

	tree, err := New(nil, nil).Collect(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"link.js", "real.js"}, tree.Files())
	assert.Equal(t, 1, tree.DirCount())
}
