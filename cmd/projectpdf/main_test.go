package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectpdf "github.com/porticus-lab/go-project-pdf"
	"github.com/porticus-lab/go-project-pdf/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// writePDF saves a PDF with the given page sizes and returns its path.
func writePDF(t *testing.T, sizes ...[2]int) string {
	t.Helper()
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}
	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	var kids strings.Builder
	for i := range sizes {
		fmt.Fprintf(&kids, "%d 0 R ", 3+i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), len(sizes)))
	for _, s := range sizes {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] >>", s[0], s[1]))
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		sel    string
		total   int
		want    []int
		wantErr bool
	}{
		{"", 3, []int{0, 1, 2}, false},
		{"2", 3, []int{1}, false},
		{"1-3", 5, []int{0, 1, 2}, false},
		{"1,3,5", 5, []int{0, 2, 4}, false},
		{"2-3, 1-2", 5, []int{1, 2, 0}, false},
		{"0", 3, nil, true},
		{"4", 3, nil, true},
		{"3-1", 3, nil, true},
		{"1-9", 3, nil, true},
		{"a", 3, nil, true},
		{"1-b", 3, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			got, err := parsePageRange(tt.sel, tt.total)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunInspectText(t *testing.T) {
	path := writePDF(t, [2]int{612, 792}, [2]int{612, 792})

	var out bytes.Buffer
	require.NoError(t, runInspect(&out, path, inspectFlags{}))

	text := out.String()
	assert.Contains(t, text, "Version: PDF-1.4\n")
	assert.Contains(t, text, "Pages:   2\n")
	assert.Contains(t, text, "  Page 1: 612 x 792 pt\n")
	assert.Contains(t, text, "  Page 2: 612 x 792 pt\n")
}

func TestRunInspectJSONRange(t *testing.T) {
	path := writePDF(t, [2]int{612, 792}, [2]int{595, 842}, [2]int{612, 792})

	var out bytes.Buffer
	require.NoError(t, runInspect(&out, path, inspectFlags{pages: "2", asJSON: true}))

	var info documentInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, 3, info.Pages)
	assert.Equal(t, []pageInfo{{Page: 2, Width: 595, Height: 842}}, info.Sizes)
}

func TestRunInspectErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runInspect(&out, filepath.Join(t.TempDir(), "none.pdf"), inspectFlags{}))

	path := writePDF(t, [2]int{612, 792})
	assert.Error(t, runInspect(&out, path, inspectFlags{pages: "2"}))
}

func TestRunTree(t *testing.T) {
	root := testutil.ExampleProject(t)
	saved := filepath.Join(t.TempDir(), "directory_structure.txt")

	var out bytes.Buffer
	require.NoError(t, runTree(&out, projectpdf.NewGenerator(), root, saved))

	assert.True(t, strings.HasPrefix(out.String(), "Project Directory Structure\nproject/\n"))
	assert.NotContains(t, out.String(), "node_modules")
	assert.Contains(t, out.String(), "Saved to "+saved)

	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Contains(t, string(data), "        index.js\n")
	assert.NotContains(t, string(data), "Saved to")
}

func TestRunGenerateHTMLOnly(t *testing.T) {
	root := testutil.ExampleProject(t)
	dst := filepath.Join(t.TempDir(), "project.html")

	var out bytes.Buffer
	err := runGenerate(context.Background(), &out, projectpdf.NewGenerator(), generateFlags{htmlOnly: true}, root, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "File: src/styles.css")
	assert.Contains(t, out.String(), "Documentation generated successfully: "+dst)
	assert.Contains(t, out.String(), "Files documented: 3 in 3 directories")
}

func TestRunGenerateRelativeSource(t *testing.T) {
	root := testutil.ExampleProject(t)
	dst := filepath.Join(t.TempDir(), "project.html")
	t.Chdir(filepath.Dir(root))
	wd, err := os.Getwd()
	require.NoError(t, err)

	var out bytes.Buffer
	err = runGenerate(context.Background(), &out, projectpdf.NewGenerator(), generateFlags{htmlOnly: true}, filepath.Base(root), dst)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Generating documentation for: "+filepath.Join(wd, filepath.Base(root))+"\n")
}

func TestRunGenerateMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	dst := filepath.Join(t.TempDir(), "out.pdf")

	var out bytes.Buffer
	err := runGenerate(context.Background(), &out, projectpdf.NewGenerator(), generateFlags{}, missing, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found - "+missing)
	assert.Empty(t, out.String())

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, &projectpdf.Report{
		Output:      "/tmp/p.pdf",
		Bytes:       5 * 1024,
		Pages:       7,
		Files:       4,
		Directories: 2,
	})
	assert.Equal(t, "Documentation generated successfully: /tmp/p.pdf\n"+
		"File size: 5 KB\n"+
		"Pages: 7\n"+
		"Files documented: 4 in 2 directories\n", out.String())
}

func TestRootCommandArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only-source"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommandHTMLFlagsExclusive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--html", "a.html", "--html-only", "src", "out"})
	assert.Error(t, cmd.Execute())
}

func TestTreeCommand(t *testing.T) {
	root := testutil.ExampleProject(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"tree", root})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "    src/\n")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", slog.String("k", "v"))
	assert.Contains(t, buf.String(), "msg=shown k=v")
}
