package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	projectpdf "github.com/porticus-lab/go-project-pdf"
	"github.com/porticus-lab/go-project-pdf/internal/fsutil"
)

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

func runGenerate(ctx context.Context, w io.Writer, g *projectpdf.Generator, flags generateFlags, src, dst string) error {
	abs, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", src, err)
	}

	html, rep, err := g.RenderHTML(abs)
	if errors.Is(err, projectpdf.ErrNotDirectory) {
		return fmt.Errorf("directory not found - %s; make sure you're pointing to the project directory", abs)
	}
	if err != nil {
		return fmt.Errorf("generating documentation: %w", err)
	}

	infoColor.Fprintf(w, "Generating documentation for: %s\n", abs)
	if !flags.htmlOnly {
		infoColor.Fprintln(w, "This may take several minutes for large projects...")
	}

	htmlPath := flags.htmlPath
	if flags.htmlOnly {
		htmlPath = dst
	}
	if htmlPath != "" {
		if err := fsutil.LockAndWrite(htmlPath, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing HTML: %w", err)
		}
		infoColor.Fprintf(w, "HTML written to: %s\n", htmlPath)
	}
	if flags.htmlOnly {
		successColor.Fprintf(w, "Documentation generated successfully: %s\n", dst)
		fmt.Fprintf(w, "Files documented: %d in %d directories\n", rep.Files, rep.Directories)
		return nil
	}

	rep, err = g.Print(ctx, html, rep, dst)
	if err != nil {
		return fmt.Errorf("generating documentation: %w", err)
	}
	printReport(w, rep)
	return nil
}

func printReport(w io.Writer, rep *projectpdf.Report) {
	successColor.Fprintf(w, "Documentation generated successfully: %s\n", rep.Output)
	fmt.Fprintf(w, "File size: %d KB\n", rep.Bytes/1024)
	if rep.Pages > 0 {
		fmt.Fprintf(w, "Pages: %d\n", rep.Pages)
	} else {
		warnColor.Fprintln(w, "Pages: unknown")
	}
	fmt.Fprintf(w, "Files documented: %d in %d directories\n", rep.Files, rep.Directories)
}
