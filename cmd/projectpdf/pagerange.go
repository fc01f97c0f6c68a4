package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePageRange converts a page selection to 0-based page indices.
// Supported forms: "" (all), "3", "1-5" and comma-separated lists of both.
// Duplicates are dropped and the first occurrence keeps its position.
func parsePageRange(sel string, total int) ([]int, error) {
	if strings.TrimSpace(sel) == "" {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var indices []int
	seen := make(map[int]bool)
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			indices = append(indices, p-1)
		}
	}

	for part := range strings.SplitSeq(sel, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid page number: %s", lo)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, fmt.Errorf("invalid page number: %s", hi)
			}
		}
		if start < 1 || end > total || start > end {
			if isRange {
				return nil, fmt.Errorf("page range %d-%d out of bounds (1-%d)", start, end, total)
			}
			return nil, fmt.Errorf("page %d out of bounds (1-%d)", start, total)
		}
		for p := start; p <= end; p++ {
			add(p)
		}
	}
	return indices, nil
}
