// Package filter decides which entries of a project tree are documented.
package filter

import (
	"path/filepath"
	"slices"
	"strings"
)

var (
	defaultExtensions = []string{
		".js", ".ts", ".json", ".html", ".css",
		".jsx", ".vue", ".scss", ".md", ".geojson",
	}
	defaultExcludedDirs = []string{
		"node_modules", ".git", "dist", "build", "coverage",
	}
)

// Config holds the allowed file extensions and the excluded directory names.
// A Config is never modified after construction, so one value can be shared
// by every pass over the tree.
type Config struct {
	extensions map[string]struct{}
	excluded   map[string]struct{}
}

// Default returns the canonical configuration used for every run.
func Default() *Config {
	return New(defaultExtensions, defaultExcludedDirs)
}

// New creates a Config. Extensions are matched case-insensitively and are
// normalized to carry a leading dot; directory names must match exactly.
func New(extensions, excludedDirs []string) *Config {
	c := &Config{
		extensions: make(map[string]struct{}, len(extensions)),
		excluded:   make(map[string]struct{}, len(excludedDirs)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.extensions[ext] = struct{}{}
	}
	for _, dir := range excludedDirs {
		if dir != "" {
			c.excluded[dir] = struct{}{}
		}
	}
	return c
}

// Include reports whether the entry at rel, a path relative to the traversal
// root, should appear in the output.
//
// Any path component equal to an excluded name rejects the entry, which also
// rejects everything beneath it. Directories are otherwise always included.
// Files must carry an allowed extension. The root itself ("" or ".") is
// always included.
func (c *Config) Include(rel string, isDir bool) bool {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == "" {
		return true
	}
	for _, part := range strings.Split(rel, "/") {
		if c.IsExcludedDir(part) {
			return false
		}
	}
	if isDir {
		return true
	}
	_, ok := c.extensions[Ext(rel)]
	return ok
}

// IsExcludedDir reports whether name is one of the excluded directory names.
func (c *Config) IsExcludedDir(name string) bool {
	_, ok := c.excluded[name]
	return ok
}

// Extensions returns the allowed extensions in sorted order.
func (c *Config) Extensions() []string {
	return sortedKeys(c.extensions)
}

// ExcludedDirs returns the excluded directory names in sorted order.
func (c *Config) ExcludedDirs() []string {
	return sortedKeys(c.excluded)
}

// Ext returns the lower-cased extension of the final element of path,
// including the leading dot. Leading dots of the file name do not start an
// extension, so ".eslintrc" has none while "a.test.JS" has ".js".
func Ext(path string) string {
	name := filepath.Base(path)
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(trimmed[i:])
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
