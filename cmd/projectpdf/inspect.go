package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/porticus-lab/go-project-pdf/internal/pdf"
)

type inspectFlags struct {
	pages  string
	asJSON bool
}

type pageInfo struct {
	Page     int     `json:"page"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation int     `json:"rotation,omitempty"`
}

type documentInfo struct {
	File     string     `json:"file"`
	Version  string     `json:"version"`
	Title    string     `json:"title,omitempty"`
	Producer string     `json:"producer,omitempty"`
	Pages    int        `json:"pages"`
	Sizes    []pageInfo `json:"sizes"`
}

func newInspectCmd() *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Show the version, page count and page sizes of a PDF",
		Example: `projectpdf inspect myproject.pdf
projectpdf inspect -p 1-3 --json myproject.pdf`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.pages, "pages", "p", "", `page range, e.g. "1", "1-5", "1,3,5" (default: all)`)
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print JSON")
	return cmd
}

func runInspect(w io.Writer, path string, flags inspectFlags) error {
	doc, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	pages, err := doc.Pages()
	if err != nil {
		return fmt.Errorf("reading pages: %w", err)
	}
	indices, err := parsePageRange(flags.pages, len(pages))
	if err != nil {
		return fmt.Errorf("invalid page range %q: %w", flags.pages, err)
	}

	meta := doc.Info()
	info := documentInfo{
		File:     path,
		Version:  doc.Version(),
		Title:    meta.Title,
		Producer: meta.Producer,
		Pages:    len(pages),
		Sizes:    make([]pageInfo, 0, len(indices)),
	}
	for _, i := range indices {
		p := pages[i]
		info.Sizes = append(info.Sizes, pageInfo{Page: i + 1, Width: p.Width, Height: p.Height, Rotation: p.Rotation})
	}

	if flags.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(w, "File:    %s\n", info.File)
	fmt.Fprintf(w, "Version: PDF-%s\n", info.Version)
	if info.Title != "" {
		fmt.Fprintf(w, "Title:   %s\n", info.Title)
	}
	fmt.Fprintf(w, "Pages:   %d\n", info.Pages)
	if len(info.Sizes) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page dimensions:")
	for _, p := range info.Sizes {
		fmt.Fprintf(w, "  Page %d: %.0f x %.0f pt", p.Page, p.Width, p.Height)
		if p.Rotation != 0 {
			fmt.Fprintf(w, " (rotated %d°)", p.Rotation)
		}
		fmt.Fprintln(w)
	}
	return nil
}
