package filter

import (
	"path/filepath"
	"testing"
)

func TestConfig_IncludesAllowedExtensions(t *testing.T) {
	c := Default()

	tests := []string{
		"index.js",
		"src/app.ts",
		"package.json",
		"public/index.html",
		"src/styles.css",
		"src/App.jsx",
		"src/App.vue",
		"src/theme.scss",
		"README.md",
		"data/regions.geojson",
		"src/UPPER.JS",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if !c.Include(filepath.FromSlash(path), false) {
				t.Errorf("Include(%q, false) = false, want true", path)
			}
		})
	}
}

func TestConfig_RejectsOtherFiles(t *testing.T) {
	c := Default()

	tests := []string{
		"main.go",
		"image.png",
		"Makefile",
		".eslintrc",
		"src/.env",
		"archive.tar.gz",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if c.Include(filepath.FromSlash(path), false) {
				t.Errorf("Include(%q, false) = true, want false", path)
			}
		})
	}
}

func TestConfig_ExcludedDirectories(t *testing.T) {
	c := Default()

	tests := []struct {
		path  string
		isDir bool
	}{
		{"node_modules", true},
		{".git", true},
		{"dist", true},
		{"build", true},
		{"coverage", true},
		{"node_modules/pkg/index.js", false},
		{"packages/web/node_modules/react/index.js", false},
		{"src/build/output.js", false},
		{".git/hooks", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if c.Include(filepath.FromSlash(tt.path), tt.isDir) {
				t.Errorf("Include(%q, %v) = true, want false", tt.path, tt.isDir)
			}
		})
	}
}

func TestConfig_DirectoriesAlwaysIncluded(t *testing.T) {
	c := Default()

	tests := []string{
		"",
		".",
		"assets",
		"src/components",
		"v1.2",
		"builds",
		"my-dist",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if !c.Include(filepath.FromSlash(path), true) {
				t.Errorf("Include(%q, true) = false, want true", path)
			}
		})
	}
}

func TestConfig_ExactComponentMatch(t *testing.T) {
	c := Default()

	tests := []struct {
		path string
		want bool
	}{
		{"dist-tools/index.js", true},
		{"node_modules_backup/index.js", true},
		{"Build/index.js", true},
		{"src/dist/index.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := c.Include(filepath.FromSlash(tt.path), false); got != tt.want {
				t.Errorf("Include(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNew_NormalizesExtensions(t *testing.T) {
	c := New([]string{"GO", ".Md", " ", ""}, []string{"vendor", ""})

	if !c.Include("main.go", false) {
		t.Error("Include(main.go) = false, want true")
	}
	if !c.Include("notes.MD", false) {
		t.Error("Include(notes.MD) = false, want true")
	}
	if c.Include("vendor/lib.go", false) {
		t.Error("Include(vendor/lib.go) = true, want false")
	}

	got := c.Extensions()
	want := []string{".go", ".md"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}
	if dirs := c.ExcludedDirs(); len(dirs) != 1 || dirs[0] != "vendor" {
		t.Errorf("ExcludedDirs() = %v, want [vendor]", dirs)
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"index.js", ".js"},
		{"a.test.JS", ".js"},
		{"src/app.min.css", ".css"},
		{".eslintrc", ""},
		{"..hidden", ""},
		{".config.json", ".json"},
		{"Makefile", ""},
		{"dir.v2/README", ""},
		{"trailing.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Ext(filepath.FromSlash(tt.path)); got != tt.want {
				t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
