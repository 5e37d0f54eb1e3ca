package processor

import (
	"fmt"
	"time"

	"filesift/app/fileloader"
)

// SheetInfo describes the sheet a result was read from
type SheetInfo struct {
	Name        string   `json:"name"`
	RowCount    int      `json:"rowCount"`
	ColumnCount int      `json:"columnCount"`
	CellRange   string   `json:"cellRange"`
	SheetNames  []string `json:"sheetNames"`
}

// ExcelResult holds the parsed rows of one sheet plus its metadata
type ExcelResult struct {
	Metadata    Metadata            `json:"metadata"`
	Sheet       SheetInfo           `json:"sheet"`
	Headers     []string            `json:"headers"`
	Rows        []map[string]string `json:"rows"`
	RowCount    int                 `json:"rowCount"`
	ColumnCount int                 `json:"columnCount"`
	Columns     []ColumnStats       `json:"columns"`
}

// ExcelProcessor converts one sheet of an Excel workbook into row objects
type ExcelProcessor struct {
	options fileloader.Options
}

// NewExcelProcessor creates an Excel processor with the given options
func NewExcelProcessor(options fileloader.Options) *ExcelProcessor {
	return &ExcelProcessor{options: options}
}

// Process parses the selected sheet (first sheet by default) of the
// workbook at path into row objects keyed by normalized header names.
func (p *ExcelProcessor) Process(path string) (*ExcelResult, error) {
	started := time.Now()

	data, err := fileloader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	sheet, err := fileloader.ReadSheet(data, p.options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Excel file: %w", err)
	}

	rows, headers := recordsToRows(sheet.Header, sheet.Records)

	result := &ExcelResult{
		Sheet: SheetInfo{
			Name:        sheet.Name,
			RowCount:    sheet.RowCount,
			ColumnCount: sheet.ColumnCount,
			CellRange:   sheet.CellRange,
			SheetNames:  sheet.SheetNames,
		},
		Headers:     headers,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(headers),
		Columns:     columnStats(headers, rows),
	}
	result.Metadata = newMetadata(path, "excel", started)
	return result, nil
}
