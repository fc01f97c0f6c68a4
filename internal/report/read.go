package report

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// readErrorPrefix starts the placeholder that replaces unreadable files.
const readErrorPrefix = "Error reading file: "

// ReadText reads the file at path and requires it to be valid UTF-8. The
// file is closed before ReadText returns.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8 at byte offset %d", invalidOffset(data))
	}
	return string(data), nil
}

// ReadPlaceholder returns the single-line text shown instead of a file that
// could not be read.
func ReadPlaceholder(err error) string {
	return readErrorPrefix + err.Error()
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
