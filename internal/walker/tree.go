package walker

import (
	"fmt"
	"os"
	"path/filepath"
)

// Tree is a fully materialized traversal. Building it once and handing the
// same value to every renderer keeps the structure, content and summary
// sections in agreement about which files exist.
type Tree struct {
	// Root is the absolute path of the traversal root.
	Root string
	// Dirs holds the visited directories in depth-first pre-order.
	Dirs []Dir
}

// Collect walks root and materializes the result. It fails when root is not
// a readable directory; unreadable subdirectories are logged and left out.
func (w *Walker) Collect(root string) (*Tree, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	tree := &Tree{Root: abs}
	for dir, err := range w.Walk(abs) {
		if err != nil {
			if dir.Depth == 0 {
				return nil, err
			}
			w.logger.Warn("skipping unreadable directory", "path", dir.Path, "error", err)
			continue
		}
		tree.Dirs = append(tree.Dirs, dir)
	}

	w.logger.Debug("walked project tree",
		"root", abs,
		"directories", tree.DirCount(),
		"files", tree.FileCount(),
	)
	return tree, nil
}

// DirCount returns the number of visited directories, the root included.
func (t *Tree) DirCount() int {
	return len(t.Dirs)
}

// FileCount returns the number of included files across all directories.
func (t *Tree) FileCount() int {
	n := 0
	for _, d := range t.Dirs {
		n += len(d.Files)
	}
	return n
}

// Files returns the root-relative path of every included file, in traversal
// order and sorted by name within each directory.
func (t *Tree) Files() []string {
	files := make([]string, 0, t.FileCount())
	for _, d := range t.Dirs {
		for _, name := range d.Files {
			files = append(files, filepath.Join(d.Rel, name))
		}
	}
	return files
}
