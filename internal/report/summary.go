package report

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/porticus-lab/go-project-pdf/internal/document"
	"github.com/porticus-lab/go-project-pdf/internal/filter"
	"github.com/porticus-lab/go-project-pdf/internal/walker"
)

const (
	summaryTitle     = "Project Documentation Summary"
	noExtensionLabel = "No Extension"
	timestampLayout  = "2006-01-02 15:04:05"
)

// ExtCount is one row of the file type table.
type ExtCount struct {
	// Ext is the lower-cased extension with its dot, or "" for none.
	Ext   string
	Count int
}

// Label returns the text shown for the extension in the summary table.
func (e ExtCount) Label() string {
	if e.Ext == "" {
		return noExtensionLabel
	}
	return e.Ext
}

// Stats aggregates a tree for the summary page.
type Stats struct {
	// Root is the absolute project root.
	Root        string
	Directories int
	Files       int
	// Extensions is sorted by extension.
	Extensions []ExtCount
}

// Summarize counts directories, files and files per extension.
func Summarize(tree *walker.Tree) Stats {
	counts := make(map[string]int)
	files := 0
	for _, dir := range tree.Dirs {
		for _, name := range dir.Files {
			counts[filter.Ext(name)]++
			files++
		}
	}

	exts := make([]ExtCount, 0, len(counts))
	for ext, n := range counts {
		exts = append(exts, ExtCount{Ext: ext, Count: n})
	}
	slices.SortFunc(exts, func(a, b ExtCount) int {
		return cmp.Compare(a.Ext, b.Ext)
	})

	return Stats{
		Root:        tree.Root,
		Directories: tree.DirCount(),
		Files:       files,
		Extensions:  exts,
	}
}

// Count returns the number of files with extension ext.
func (s Stats) Count(ext string) int {
	for _, e := range s.Extensions {
		if e.Ext == ext {
			return e.Count
		}
	}
	return 0
}

// Summary renders the summary page. documented is the number of files the
// content pass processed.
func Summary(stats Stats, documented int, now time.Time) []document.Block {
	rows := make([][]string, 0, len(stats.Extensions))
	for _, e := range stats.Extensions {
		rows = append(rows, []string{e.Label(), strconv.Itoa(e.Count)})
	}

	return []document.Block{
		document.Paragraph(document.StyleStructureHeader, summaryTitle),
		document.Spacer(0.3),
		document.Paragraph(document.StyleSummaryItem, "Project Root: "+stats.Root),
		document.Paragraph(document.StyleSummaryItem, "Generated on: "+now.Format(timestampLayout)),
		document.Paragraph(document.StyleSummaryItem, "Total Directories: "+strconv.Itoa(stats.Directories)),
		document.Paragraph(document.StyleSummaryItem, "Total Files Documented: "+strconv.Itoa(documented)),
		document.Spacer(0.2),
		document.NewTable([]string{"File Type", "Count"}, rows),
	}
}
