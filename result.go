package projectpdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/porticus-lab/go-project-pdf/internal/fsutil"
	"github.com/porticus-lab/go-project-pdf/internal/pdf"
)

// Result holds a generated PDF.
//
// A Result is returned by every conversion. Its data is never modified.
type Result struct {
	data []byte
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Reader returns a [*bytes.Reader] over the PDF content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile replaces the file at path with the PDF. The file is written
// under a lock and renamed into place, so readers never observe a
// partial document.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	if err := fsutil.LockAndWrite(path, r.data, perm); err != nil {
		return fmt.Errorf("projectpdf: %w", err)
	}
	return nil
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// Pages returns the number of pages in the PDF.
func (r *Result) Pages() (int, error) {
	doc, err := pdf.Load(r.data)
	if err != nil {
		return 0, fmt.Errorf("projectpdf: reading result: %w", err)
	}
	return doc.PageCount()
}
