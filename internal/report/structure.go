package report

import (
	"strings"

	"github.com/porticus-lab/go-project-pdf/internal/document"
	"github.com/porticus-lab/go-project-pdf/internal/walker"
)

const (
	structureTitle = "Project Directory Structure"
	indentUnit     = "    "
)

// Structure renders the indented directory listing: one label per visited
// directory followed by its files, one level deeper.
func Structure(tree *walker.Tree) []document.Block {
	blocks := []document.Block{
		document.Paragraph(document.StyleStructureHeader, structureTitle),
	}
	for _, dir := range tree.Dirs {
		indent := strings.Repeat(indentUnit, dir.Depth)
		blocks = append(blocks, document.Paragraph(document.StyleDirItem, indent+dir.Name()+"/"))

		fileIndent := indent + indentUnit
		for _, name := range dir.Files {
			blocks = append(blocks, document.Paragraph(document.StyleFileItem, fileIndent+name))
		}
	}
	return blocks
}
