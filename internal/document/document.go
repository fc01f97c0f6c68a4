// Package document defines the ordered content blocks that make up a
// generated project document.
//
// A Block is a tagged value: consumers switch on [Block.Kind] rather than
// probing which fields are set. Blocks are never modified once appended.
package document

import "fmt"

// Kind identifies the variant of a Block.
type Kind int

const (
	// KindParagraph is a single line of styled text.
	KindParagraph Kind = iota
	// KindSpacer is vertical whitespace of a fixed height.
	KindSpacer
	// KindPageBreak forces the next block onto a new page.
	KindPageBreak
	// KindCode is a preformatted listing whose line breaks are preserved and
	// never reflowed.
	KindCode
	// KindTable is a grid with a header row.
	KindTable
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindSpacer:
		return "spacer"
	case KindPageBreak:
		return "page-break"
	case KindCode:
		return "code"
	case KindTable:
		return "table"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Style names a paragraph style from the layout theme.
type Style string

// Named styles.
const (
	StyleTitle           Style = "Title"
	StyleHeading2        Style = "Heading2"
	StyleHeading3        Style = "Heading3"
	StyleStructureHeader Style = "StructureHeader"
	StyleDirItem         Style = "DirItem"
	StyleFileItem        Style = "FileItem"
	StyleCodeHeader      Style = "CodeHeader"
	StyleSummaryItem     Style = "SummaryItem"
	StyleCode            Style = "Code"
)

// Table is the payload of a KindTable block.
type Table struct {
	Header []string
	Rows   [][]string
}

// Block is one unit of output.
type Block struct {
	Kind Kind
	// Style applies to paragraphs and code.
	Style Style
	// Text is the paragraph text or the code listing.
	Text string
	// Height is the spacer height in inches.
	Height float64
	// Table is set for KindTable only.
	Table *Table
}

// Paragraph returns a paragraph block.
func Paragraph(style Style, text string) Block {
	return Block{Kind: KindParagraph, Style: style, Text: text}
}

// Spacer returns a spacer block of the given height in inches.
func Spacer(inches float64) Block {
	return Block{Kind: KindSpacer, Height: inches}
}

// PageBreak returns a page break.
func PageBreak() Block {
	return Block{Kind: KindPageBreak}
}

// Code returns a preformatted listing.
func Code(text string) Block {
	return Block{Kind: KindCode, Style: StyleCode, Text: text}
}

// NewTable returns a table block. The header and rows are copied.
func NewTable(header []string, rows [][]string) Block {
	t := &Table{Header: append([]string(nil), header...)}
	for _, r := range rows {
		t.Rows = append(t.Rows, append([]string(nil), r...))
	}
	return Block{Kind: KindTable, Table: t}
}

// Document is an ordered sequence of blocks.
type Document struct {
	// Title is used as the document title metadata.
	Title  string
	Blocks []Block
}

// Append adds blocks to the end of the document.
func (d *Document) Append(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// Count returns how many blocks of kind k the document holds.
func (d *Document) Count(k Kind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == k {
			n++
		}
	}
	return n
}
