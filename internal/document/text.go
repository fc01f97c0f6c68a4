package document

import (
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText writes a plain-text rendering of blocks to w. Paragraphs and code
// are written verbatim, tables are aligned into columns, spacers become a
// blank line and page breaks a form feed.
func WriteText(w io.Writer, blocks []Block) error {
	for _, b := range blocks {
		var err error
		switch b.Kind {
		case KindParagraph, KindCode:
			_, err = io.WriteString(w, b.Text+"\n")
		case KindSpacer:
			_, err = io.WriteString(w, "\n")
		case KindPageBreak:
			_, err = io.WriteString(w, "\f\n")
		case KindTable:
			err = writeTable(w, b.Table)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PlainText returns the plain-text rendering of blocks.
func PlainText(blocks []Block) string {
	var sb strings.Builder
	_ = WriteText(&sb, blocks)
	return sb.String()
}

func writeTable(w io.Writer, t *Table) error {
	if t == nil {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := io.WriteString(tw, strings.Join(t.Header, "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := io.WriteString(tw, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
