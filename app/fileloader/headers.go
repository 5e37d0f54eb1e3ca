package fileloader

import (
	"strconv"
	"strings"
)

// excelColumnName converts a 0-based index to an Excel-style column name:
// 0 -> A, 25 -> Z, 26 -> AA, 702 -> AAA
func excelColumnName(index int) string {
	result := ""
	index++

	for index > 0 {
		index--
		result = string(rune('A'+index%26)) + result
		index /= 26
	}

	return result
}

// NormalizeHeaders replaces empty or whitespace-only headers with
// Unnamed_A, Unnamed_B, ... so every column has a usable key. Non-empty
// headers are preserved as-is; duplicates get a _2, _3 suffix so row maps
// never silently drop columns.
func NormalizeHeaders(header []string) []string {
	normalized := make([]string, len(header))
	seen := make(map[string]int, len(header))
	emptyCount := 0

	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed_" + excelColumnName(emptyCount)
			emptyCount++
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = name + "_" + strconv.Itoa(n)
		}
		normalized[i] = name
	}

	return normalized
}
