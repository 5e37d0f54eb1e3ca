package fileloader

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	cells := [][]interface{}{
		{"name", "age"},
		{"John", 30},
		{"Jane", 25},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if _, err := f.NewSheet("Extras"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadSheet(t *testing.T) {
	data := buildWorkbook(t)

	sheet, err := ReadSheet(data, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}

	if sheet.Name != "Sheet1" {
		t.Errorf("Name = %q, want Sheet1", sheet.Name)
	}
	if !reflect.DeepEqual(sheet.Header, []string{"name", "age"}) {
		t.Errorf("Header = %v", sheet.Header)
	}
	if sheet.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", sheet.RowCount)
	}
	if sheet.ColumnCount != 2 {
		t.Errorf("ColumnCount = %d, want 2", sheet.ColumnCount)
	}
	if sheet.CellRange != "A1:B3" {
		t.Errorf("CellRange = %q, want A1:B3", sheet.CellRange)
	}
	if !reflect.DeepEqual(sheet.SheetNames, []string{"Sheet1", "Extras"}) {
		t.Errorf("SheetNames = %v", sheet.SheetNames)
	}
	if !reflect.DeepEqual(sheet.Records[0], []string{"John", "30"}) {
		t.Errorf("Records[0] = %v", sheet.Records[0])
	}
}

func TestReadSheetByName(t *testing.T) {
	data := buildWorkbook(t)

	if _, err := ReadSheet(data, Options{SheetName: "Missing"}); err == nil {
		t.Error("expected error for unknown sheet name")
	}
}

func TestReadSheetNoHeaderRow(t *testing.T) {
	data := buildWorkbook(t)

	sheet, err := ReadSheet(data, Options{NoHeaderRow: true})
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}
	if !reflect.DeepEqual(sheet.Header, []string{"Unnamed_A", "Unnamed_B"}) {
		t.Errorf("Header = %v", sheet.Header)
	}
	if sheet.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3 (header row counted as data)", sheet.RowCount)
	}
}

func TestReadSheetEmptyData(t *testing.T) {
	if _, err := ReadSheet(nil, DefaultOptions()); err == nil {
		t.Error("expected error for empty data")
	}
}
