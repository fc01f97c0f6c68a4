// Package report turns a walked project tree into the blocks of the
// generated document: cover page, directory structure, numbered file
// listings and the summary page.
//
// Every renderer consumes the same [walker.Tree], so the three sections
// always agree on which files exist.
package report
