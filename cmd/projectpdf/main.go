// Command projectpdf documents a project directory as a PDF.
//
// Usage:
//
//	projectpdf <source-dir> <output.pdf>
//	projectpdf tree <source-dir> [-o file]
//	projectpdf inspect <file.pdf>
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	projectpdf "github.com/porticus-lab/go-project-pdf"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
}

// generateFlags configure the browser and the output of the root command.
type generateFlags struct {
	chromePath   string
	noSandbox    bool
	autoDownload bool
	timeout      time.Duration
	htmlPath     string
	htmlOnly     bool
}

func main() {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var global globalFlags
	var gen generateFlags

	cmd := &cobra.Command{
		Use:   "projectpdf <source-dir> <output.pdf>",
		Short: "Document a project tree as a PDF",
		Long: `projectpdf walks a project directory and writes a single PDF with a
cover page, the directory structure, a line-numbered listing of every
source file and a summary of file counts per type.

Only .js .ts .json .html .css .jsx .vue .scss .md and .geojson files are
documented. node_modules, .git, dist, build and coverage directories are
skipped entirely.

The PDF is printed by headless Chrome or Chromium.`,
		Example: `projectpdf ./myproject myproject.pdf
projectpdf --no-sandbox --html layout.html ./myproject myproject.pdf
projectpdf --html-only ./myproject myproject.html`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), global.verbose)
			g := projectpdf.NewGenerator(gen.options(logger)...)
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), g, gen, args[0], args[1])
		},
	}

	cmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "enable debug logging")

	f := cmd.Flags()
	f.StringVar(&gen.chromePath, "chrome-path", "", "path to the Chrome or Chromium executable")
	f.BoolVar(&gen.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (needed when running as root)")
	f.BoolVar(&gen.autoDownload, "auto-download", false, "download Chromium when no browser is installed")
	f.DurationVar(&gen.timeout, "timeout", 5*time.Minute, "maximum time to print the PDF")
	f.StringVar(&gen.htmlPath, "html", "", "also write the laid-out HTML to this file")
	f.BoolVar(&gen.htmlOnly, "html-only", false, "write the laid-out HTML to the output path and skip the PDF")
	cmd.MarkFlagsMutuallyExclusive("html", "html-only")

	cmd.AddCommand(newTreeCmd(&global), newInspectCmd())
	return cmd
}

func (f generateFlags) options(logger *slog.Logger) []projectpdf.Option {
	opts := []projectpdf.Option{
		projectpdf.WithLogger(logger),
		projectpdf.WithTimeout(f.timeout),
	}
	if f.chromePath != "" {
		opts = append(opts, projectpdf.WithChromePath(f.chromePath))
	}
	if f.noSandbox {
		opts = append(opts, projectpdf.WithNoSandbox())
	}
	if f.autoDownload {
		opts = append(opts, projectpdf.WithAutoDownload())
	}
	return opts
}

// newLogger writes text logs to w: warnings by default, everything when
// verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
