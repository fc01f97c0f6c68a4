package report

import (
	"log/slog"
	"path/filepath"

	"github.com/porticus-lab/go-project-pdf/internal/document"
	"github.com/porticus-lab/go-project-pdf/internal/walker"
)

// Contents renders one listing per included file, each starting on a new
// page, and returns the blocks together with the number of files processed.
// A file that cannot be read still produces a listing holding the error
// placeholder and still counts.
func Contents(tree *walker.Tree, logger *slog.Logger) ([]document.Block, int) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		blocks []document.Block
		count  int
	)
	for _, dir := range tree.Dirs {
		for _, name := range dir.Files {
			rel := filepath.Join(dir.Rel, name)

			text, err := ReadText(filepath.Join(dir.Path, name))
			if err != nil {
				logger.Warn("could not read file", "path", rel, "error", err)
				text = ReadPlaceholder(err)
			}
			count++

			blocks = append(blocks,
				document.PageBreak(),
				document.Paragraph(document.StyleCodeHeader, "File: "+rel),
				document.Code(NumberLines(text)),
			)
		}
	}
	return blocks, count
}
