// Package projectpdf documents a source tree as a single PDF: a cover
// page, the directory structure, a line-numbered listing of every
// documented file and a summary of counts per file type.
//
// Files are selected by a fixed set of extensions, and the directories
// node_modules, .git, dist, build and coverage are skipped along with
// everything beneath them. The tree is walked once and every section is
// rendered from that single traversal.
//
// # Generating
//
//	g := projectpdf.NewGenerator(projectpdf.WithNoSandbox())
//	rep, err := g.Generate(ctx, "./myproject", "myproject.pdf")
//
// The document is laid out as HTML and printed by headless Chrome.
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]
// to fetch a managed build. [Generator.RenderHTML] returns the laid-out
// HTML without starting a browser.
//
// The output file is replaced atomically, so a failed run never leaves a
// truncated PDF at the destination.
//
// # Converting HTML
//
// [Converter] exposes the printing step on its own and reuses one
// browser process across conversions:
//
//	c, err := projectpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.ConvertHTML(ctx, "<h1>Hello</h1>", nil)
//	n, err := res.Pages()
package projectpdf
