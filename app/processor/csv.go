package processor

import (
	"fmt"
	"time"

	"filesift/app/fileloader"
)

// ColumnStats summarizes one column of a tabular result
type ColumnStats struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	NonEmpty int    `json:"nonEmpty"`
	Empty    int    `json:"empty"`
}

// CSVResult holds the parsed rows of a CSV file keyed by header name
type CSVResult struct {
	Metadata    Metadata            `json:"metadata"`
	Headers     []string            `json:"headers"`
	Rows        []map[string]string `json:"rows"`
	RowCount    int                 `json:"rowCount"`
	ColumnCount int                 `json:"columnCount"`
	Columns     []ColumnStats       `json:"columns"`
}

// CSVProcessor converts CSV files (optionally compressed) into row objects
type CSVProcessor struct {
	options fileloader.Options
}

// NewCSVProcessor creates a CSV processor with the given options
func NewCSVProcessor(options fileloader.Options) *CSVProcessor {
	return &CSVProcessor{options: options}
}

// Process parses the CSV file at path into row objects keyed by the
// normalized header names. Ragged records are aligned to the header:
// missing fields become empty strings, extra fields are kept under
// synthetic column names.
func (p *CSVProcessor) Process(path string) (*CSVResult, error) {
	started := time.Now()

	data, err := fileloader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	header, records, err := fileloader.ReadCSVRecords(data, p.options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	rows, headers := recordsToRows(header, records)

	result := &CSVResult{
		Headers:     headers,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(headers),
		Columns:     columnStats(headers, rows),
	}
	result.Metadata = newMetadata(path, "csv", started)
	return result, nil
}

// recordsToRows maps raw records onto header keys, widening the header
// with Excel-style names when a record has extra fields.
func recordsToRows(header []string, records [][]string) ([]map[string]string, []string) {
	headers := append([]string(nil), header...)
	for _, rec := range records {
		for len(headers) < len(rec) {
			widened := make([]string, len(rec))
			copy(widened, headers)
			headers = fileloader.NormalizeHeaders(widened)
		}
	}

	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		row := make(map[string]string, len(headers))
		for i, name := range headers {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, headers
}

// columnStats counts empty and non-empty cells per column and infers
// each column's value kind.
func columnStats(headers []string, rows []map[string]string) []ColumnStats {
	stats := make([]ColumnStats, len(headers))
	for i, name := range headers {
		stats[i].Name = name
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[name])
			if row[name] != "" {
				stats[i].NonEmpty++
			} else {
				stats[i].Empty++
			}
		}
		stats[i].Kind = inferKind(name, values)
	}
	return stats
}
