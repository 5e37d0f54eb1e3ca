package fileloader

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel reading primitives built on excelize. Entry points accept raw
// bytes so compressed inputs can be decompressed upstream.

// SheetData holds the rows of one sheet plus its metadata
type SheetData struct {
	Name        string
	Header      []string
	Records     [][]string
	RowCount    int
	ColumnCount int
	CellRange   string
	SheetNames  []string
}

// ReadSheet loads one sheet from XLSX data. An empty sheet name selects
// the first sheet. The header is normalized like CSV headers.
func ReadSheet(data []byte, options Options) (*SheetData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	name := options.SheetName
	if name == "" {
		name = sheets[0]
	} else if !containsSheet(sheets, name) {
		return nil, fmt.Errorf("sheet %q not found; available sheets: %v", name, sheets)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows found in sheet %q", name)
	}

	sheet := &SheetData{
		Name:       name,
		SheetNames: sheets,
	}

	firstRow := rows[0]
	if options.NoHeaderRow {
		sheet.Header = NormalizeHeaders(make([]string, len(firstRow)))
		sheet.Records = rows
	} else {
		sheet.Header = NormalizeHeaders(firstRow)
		sheet.Records = rows[1:]
	}
	sheet.RowCount = len(sheet.Records)

	for _, row := range rows {
		if len(row) > sheet.ColumnCount {
			sheet.ColumnCount = len(row)
		}
	}
	if sheet.ColumnCount > 0 {
		sheet.CellRange = fmt.Sprintf("A1:%s%d", excelColumnName(sheet.ColumnCount-1), len(rows))
	}

	return sheet, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
