package report

import (
	"fmt"
	"strings"
)

// NumberLines prefixes every line of content with its 1-based number,
// right-aligned in a four character field. Line text is kept verbatim and
// never wrapped. A trailing line break does not start an extra line.
func NumberLines(content string) string {
	lines := SplitLines(content)
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%4d | %s", i+1, line)
	}
	return sb.String()
}

// SplitLines splits content on "\r\n", "\r" and "\n".
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
