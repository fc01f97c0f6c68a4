// Package walker traverses a project tree depth-first, pruning excluded
// directories and files before they are ever visited or read.
package walker

import (
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/porticus-lab/go-project-pdf/internal/filter"
)

// Dir is one visited directory with the entries that survived filtering.
type Dir struct {
	// Path is the directory's path as reached from the root.
	Path string
	// Rel is Path relative to the root; the root itself is ".".
	Rel string
	// Depth is 0 for the root and grows by one per level.
	Depth int
	// Subdirs lists the immediate subdirectories that will be descended into.
	Subdirs []string
	// Files lists the immediate included files, sorted by name.
	Files []string
}

// Name returns the label used for the directory in listings: the root's base
// name, or the directory's own name.
func (d Dir) Name() string {
	return filepath.Base(d.Path)
}

// Walker produces the filtered traversal of a root directory.
type Walker struct {
	filter *filter.Config
	logger *slog.Logger
}

// New creates a Walker. A nil filter selects [filter.Default]; a nil logger
// selects [slog.Default].
func New(f *filter.Config, logger *slog.Logger) *Walker {
	if f == nil {
		f = filter.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{filter: f, logger: logger}
}

// Filter returns the configuration the Walker applies.
func (w *Walker) Filter() *filter.Config {
	return w.filter
}

// Walk lazily yields one Dir per visited directory in depth-first pre-order.
// A directory that cannot be listed is yielded once with a non-nil error and
// is not descended into. Stopping the iteration stops the traversal.
func (w *Walker) Walk(root string) iter.Seq2[Dir, error] {
	return func(yield func(Dir, error) bool) {
		w.visit(root, ".", 0, yield)
	}
}

func (w *Walker) visit(path, rel string, depth int, yield func(Dir, error) bool) bool {
	dir := Dir{Path: path, Rel: rel, Depth: depth}

	entries, err := os.ReadDir(path)
	if err != nil {
		return yield(dir, fmt.Errorf("reading directory %s: %w", path, err))
	}

	for _, entry := range entries {
		name := entry.Name()
		childRel := filepath.Join(rel, name)

		isDir, ok := w.classify(filepath.Join(path, name), entry)
		if !ok {
			continue
		}
		if !w.filter.Include(childRel, isDir) {
			continue
		}
		if isDir {
			dir.Subdirs = append(dir.Subdirs, name)
		} else {
			dir.Files = append(dir.Files, name)
		}
	}

	if !yield(dir, nil) {
		return false
	}

	for _, name := range dir.Subdirs {
		if !w.visit(filepath.Join(path, name), filepath.Join(rel, name), depth+1, yield) {
			return false
		}
	}
	return true
}

// classify reports whether entry is a directory to descend into or a regular
// file. Symbolic links to files count as files; links to directories and
// special files are skipped.
func (w *Walker) classify(path string, entry fs.DirEntry) (isDir, ok bool) {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return true, true
	case mode.IsRegular():
		return false, true
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			w.logger.Debug("skipping broken symlink", "path", path, "error", err)
			return false, false
		}
		if info.Mode().IsRegular() {
			return false, true
		}
		w.logger.Debug("not following symlink", "path", path)
		return false, false
	default:
		w.logger.Debug("skipping special file", "path", path, "mode", mode.String())
		return false, false
	}
}
