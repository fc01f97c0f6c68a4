package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	projectpdf "github.com/porticus-lab/go-project-pdf"
	"github.com/porticus-lab/go-project-pdf/internal/fsutil"
)

func newTreeCmd(global *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tree <source-dir>",
		Short: "Print the documented directory structure as text",
		Long: `tree prints the directory-structure section of the document as
plain text, applying the same file selection as PDF generation.`,
		Example: `projectpdf tree ./myproject
projectpdf tree ./myproject -o directory_structure.txt`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := projectpdf.NewGenerator(
				projectpdf.WithLogger(newLogger(cmd.ErrOrStderr(), global.verbose)),
			)
			return runTree(cmd.OutOrStdout(), g, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "also save the structure to this file")
	return cmd
}

func runTree(w io.Writer, g *projectpdf.Generator, src, output string) error {
	text, err := g.Structure(src)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if output == "" {
		return nil
	}
	if err := fsutil.LockAndWrite(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("saving structure: %w", err)
	}
	successColor.Fprintf(w, "Saved to %s\n", output)
	return nil
}
