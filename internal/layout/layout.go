// Package layout lays out document blocks as print-ready HTML. Headless
// Chrome then paginates the HTML into the final PDF.
package layout

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/porticus-lab/go-project-pdf/internal/document"
)

//go:embed templates/document.html.tmpl
var templateFS embed.FS

var documentTemplate = template.Must(
	template.ParseFS(templateFS, "templates/document.html.tmpl"),
)

// Renderer turns a document into HTML using a fixed theme.
type Renderer struct {
	theme Theme
}

// New creates a Renderer for theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

type blockView struct {
	Kind   string
	Class  string
	Text   string
	Height string
	Table  *document.Table
}

type pageView []blockView

type documentView struct {
	Title string
	CSS   template.CSS
	Pages []pageView
}

// Render writes the HTML for doc to w.
func (r *Renderer) Render(w io.Writer, doc *document.Document) error {
	view := documentView{
		Title: doc.Title,
		CSS:   template.CSS(r.theme.CSS()),
	}
	for _, page := range Paginate(doc.Blocks) {
		pv := make(pageView, 0, len(page))
		for _, b := range page {
			v, err := r.view(b)
			if err != nil {
				return err
			}
			pv = append(pv, v)
		}
		view.Pages = append(view.Pages, pv)
	}

	if err := documentTemplate.ExecuteTemplate(w, "document.html.tmpl", view); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

// RenderString returns the HTML for doc.
func (r *Renderer) RenderString(doc *document.Document) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) view(b document.Block) (blockView, error) {
	switch b.Kind {
	case document.KindParagraph, document.KindCode:
		if _, ok := r.theme.Style(b.Style); !ok {
			return blockView{}, fmt.Errorf("unknown style %q", b.Style)
		}
		return blockView{Kind: b.Kind.String(), Class: string(b.Style), Text: b.Text}, nil
	case document.KindSpacer:
		return blockView{Kind: b.Kind.String(), Height: strconv.FormatFloat(b.Height, 'f', -1, 64) + "in"}, nil
	case document.KindTable:
		if b.Table == nil {
			return blockView{}, fmt.Errorf("table block without table")
		}
		return blockView{Kind: b.Kind.String(), Table: b.Table}, nil
	}
	return blockView{}, fmt.Errorf("cannot lay out %s block", b.Kind)
}

// Paginate splits blocks at page breaks. A break on an empty page is a
// no-op, so consecutive, leading and trailing breaks never produce blank
// pages.
func Paginate(blocks []document.Block) [][]document.Block {
	var (
		pages   [][]document.Block
		current []document.Block
	)
	for _, b := range blocks {
		if b.Kind == document.KindPageBreak {
			if len(current) > 0 {
				pages = append(pages, current)
				current = nil
			}
			continue
		}
		current = append(current, b)
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}
