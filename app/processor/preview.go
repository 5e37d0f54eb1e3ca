package processor

import (
	"fmt"
	"strings"
)

// PreviewTable renders the first limit rows as an aligned text table for
// terminal output. Cell values longer than 24 characters are truncated.
func PreviewTable(headers []string, rows []map[string]string, limit int) string {
	if len(headers) == 0 {
		return ""
	}
	if limit > len(rows) {
		limit = len(rows)
	}

	const maxCell = 24
	widths := make([]int, len(headers))
	cells := make([][]string, 0, limit+1)

	clip := func(s string) string {
		if len(s) > maxCell {
			return s[:maxCell-3] + "..."
		}
		return s
	}

	headerRow := make([]string, len(headers))
	for i, h := range headers {
		headerRow[i] = clip(h)
		widths[i] = len(headerRow[i])
	}
	cells = append(cells, headerRow)

	for _, row := range rows[:limit] {
		line := make([]string, len(headers))
		for i, h := range headers {
			line[i] = clip(row[h])
			if len(line[i]) > widths[i] {
				widths[i] = len(line[i])
			}
		}
		cells = append(cells, line)
	}

	var sb strings.Builder
	for rowIdx, line := range cells {
		for i, cell := range line {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString("\n")
		if rowIdx == 0 {
			for i, w := range widths {
				if i > 0 {
					sb.WriteString("  ")
				}
				sb.WriteString(strings.Repeat("-", w))
			}
			sb.WriteString("\n")
		}
	}
	if len(rows) > limit {
		sb.WriteString(fmt.Sprintf("... %d more rows\n", len(rows)-limit))
	}
	return sb.String()
}
