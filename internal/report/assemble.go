package report

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/porticus-lab/go-project-pdf/internal/document"
	"github.com/porticus-lab/go-project-pdf/internal/walker"
)

const (
	documentTitle = "Project Documentation"
	dateLayout    = "2006-01-02"
)

// Assembler orders the sections of a project document.
type Assembler struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewAssembler creates an Assembler. now supplies the generation timestamp;
// nil selects [time.Now].
func NewAssembler(logger *slog.Logger, now func() time.Time) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Assembler{logger: logger, now: now}
}

// Assemble builds the document for tree: cover page, structure, one listing
// per file and the summary, separated by page breaks.
func (a *Assembler) Assemble(tree *walker.Tree) (*document.Document, Stats) {
	now := a.now()

	doc := &document.Document{Title: documentTitle + ": " + filepath.Base(tree.Root)}
	doc.Append(Cover(tree.Root, now)...)
	doc.Append(document.PageBreak())
	doc.Append(Structure(tree)...)
	doc.Append(document.PageBreak())

	contents, documented := Contents(tree, a.logger)
	doc.Append(contents...)

	stats := Summarize(tree)
	if stats.Files != documented {
		a.logger.Error("file count mismatch", "summary", stats.Files, "content", documented)
	}
	doc.Append(document.PageBreak())
	doc.Append(Summary(stats, documented, now)...)

	a.logger.Debug("assembled document",
		"blocks", len(doc.Blocks),
		"files", documented,
		"directories", stats.Directories,
	)
	return doc, stats
}

// Cover renders the title page.
func Cover(root string, now time.Time) []document.Block {
	return []document.Block{
		document.Paragraph(document.StyleTitle, documentTitle),
		document.Spacer(0.5),
		document.Paragraph(document.StyleHeading2, "Project: "+filepath.Base(root)),
		document.Paragraph(document.StyleHeading3, "Generated on: "+now.Format(dateLayout)),
	}
}
