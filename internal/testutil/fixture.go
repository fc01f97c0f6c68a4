// Package testutil builds project trees on disk for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTree creates files below root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory instead of a file.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("creating %s: %v", rel, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating parent of %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

// ExampleProject creates the reference tree used across the test suite and
// returns its root:
//
//	project/
//	    README.md
//	    assets/
//	    node_modules/pkg/index.js
//	    src/index.js      (2 lines)
//	    src/styles.css    (1 line)
func ExampleProject(t testing.TB) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	WriteTree(t, root, map[string]string{
		"README.md":                 "# Project\n",
		"assets/":                   "",
		"node_modules/pkg/index.js": "module.exports = {};\n",
		"src/index.js":              "const a = 1;\nconsole.log(a);\n",
		"src/styles.css":            "body { margin: 0; }\n",
	})
	return root
}
