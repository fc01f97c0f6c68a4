package projectpdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/porticus-lab/go-project-pdf/internal/document"
	"github.com/porticus-lab/go-project-pdf/internal/layout"
	"github.com/porticus-lab/go-project-pdf/internal/report"
	"github.com/porticus-lab/go-project-pdf/internal/walker"
)

// ExtensionCount is the number of documented files sharing an extension.
// Ext is empty for files without one.
type ExtensionCount struct {
	Ext   string
	Count int
}

// Report describes a generated document.
type Report struct {
	// Root is the absolute source directory.
	Root string
	// Output is the PDF path, empty when only HTML was rendered.
	Output      string
	Directories int
	Files       int
	// Extensions is sorted by extension.
	Extensions []ExtensionCount
	// Bytes and Pages describe the written PDF.
	Bytes int
	Pages int
}

// Generator documents project trees as PDF files.
type Generator struct {
	cfg config
}

// NewGenerator creates a Generator. The browser is only started by
// [Generator.Generate].
func NewGenerator(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts)}
}

// collect walks root once. The result feeds every section of the document.
func (g *Generator) collect(root string) (*walker.Tree, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
		}
		return nil, fmt.Errorf("projectpdf: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	tree, err := walker.New(g.cfg.filter, g.cfg.logger).Collect(root)
	if err != nil {
		return nil, fmt.Errorf("projectpdf: walking %s: %w", root, err)
	}
	return tree, nil
}

func (g *Generator) build(root string) (*document.Document, *Report, error) {
	tree, err := g.collect(root)
	if err != nil {
		return nil, nil, err
	}
	doc, stats := report.NewAssembler(g.cfg.logger, g.cfg.now).Assemble(tree)

	rep := &Report{
		Root:        stats.Root,
		Directories: stats.Directories,
		Files:       stats.Files,
	}
	for _, e := range stats.Extensions {
		rep.Extensions = append(rep.Extensions, ExtensionCount{Ext: e.Ext, Count: e.Count})
	}
	return doc, rep, nil
}

// RenderHTML lays out the document for root as print-ready HTML without
// starting a browser.
func (g *Generator) RenderHTML(root string) (string, *Report, error) {
	doc, rep, err := g.build(root)
	if err != nil {
		return "", nil, err
	}
	html, err := layout.New(g.cfg.theme).RenderString(doc)
	if err != nil {
		return "", nil, fmt.Errorf("projectpdf: layout: %w", err)
	}
	return html, rep, nil
}

// Structure returns the directory-structure section of root as plain text.
func (g *Generator) Structure(root string) (string, error) {
	tree, err := g.collect(root)
	if err != nil {
		return "", err
	}
	return document.PlainText(report.Structure(tree)), nil
}

// Generate documents root and writes the PDF to output, replacing any
// existing file. On error the destination is left untouched.
func (g *Generator) Generate(ctx context.Context, root, output string) (*Report, error) {
	html, rep, err := g.RenderHTML(root)
	if err != nil {
		return nil, err
	}
	return g.Print(ctx, html, rep, output)
}

// Print converts HTML returned by [Generator.RenderHTML] to a PDF at
// output and completes rep with the output path, size and page count. A
// nil rep yields a new Report holding only those fields.
func (g *Generator) Print(ctx context.Context, html string, rep *Report, output string) (*Report, error) {
	if rep == nil {
		rep = &Report{}
	}
	conv, err := newConverter(g.cfg)
	if err != nil {
		return nil, err
	}
	defer conv.Close()

	start := time.Now()
	res, err := conv.ConvertHTML(ctx, html, &g.cfg.page)
	if err != nil {
		return nil, err
	}
	if err := res.WriteToFile(output, 0o644); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		abs = output
	}
	rep.Output = abs
	rep.Bytes = res.Len()
	if rep.Pages, err = res.Pages(); err != nil {
		g.cfg.logger.Warn("could not count pages", "path", abs, "error", err)
	}

	g.cfg.logger.Info("wrote document",
		"path", abs,
		"bytes", rep.Bytes,
		"pages", rep.Pages,
		"files", rep.Files,
		"duration", time.Since(start),
	)
	return rep, nil
}
