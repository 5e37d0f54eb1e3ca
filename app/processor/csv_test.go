package processor

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"filesift/app/fileloader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestCSVProcess(t *testing.T) {
	path := writeFile(t, t.TempDir(), "people.csv", "name,age\nJohn,30\nJane,25\n")

	result, err := NewCSVProcessor(fileloader.DefaultOptions()).Process(path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !reflect.DeepEqual(result.Headers, []string{"name", "age"}) {
		t.Errorf("Headers = %v", result.Headers)
	}
	if result.RowCount != 2 || len(result.Rows) != 2 {
		t.Fatalf("RowCount = %d, Rows = %v", result.RowCount, result.Rows)
	}
	want := map[string]string{"name": "John", "age": "30"}
	if !reflect.DeepEqual(result.Rows[0], want) {
		t.Errorf("Rows[0] = %v, want %v", result.Rows[0], want)
	}
	if result.Metadata.RunID == "" || result.Metadata.SourceFile != path {
		t.Errorf("Metadata = %+v", result.Metadata)
	}
	if result.Metadata.Format != "csv" {
		t.Errorf("Format = %q", result.Metadata.Format)
	}
}

func TestCSVProcessRaggedRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ragged.csv", "a,b\n1\n2,3,4\n")

	result, err := NewCSVProcessor(fileloader.DefaultOptions()).Process(path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	// Short rows are padded, long rows widen the header set
	if result.ColumnCount != 3 {
		t.Fatalf("ColumnCount = %d, headers %v", result.ColumnCount, result.Headers)
	}
	if result.Rows[0]["b"] != "" {
		t.Errorf("short row not padded: %v", result.Rows[0])
	}
	if result.Rows[1][result.Headers[2]] != "4" {
		t.Errorf("extra field lost: %v", result.Rows[1])
	}
}

func TestCSVProcessColumnStats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gaps.csv", "a,b\n1,\n2,3\n")

	result, err := NewCSVProcessor(fileloader.DefaultOptions()).Process(path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []ColumnStats{
		{Name: "a", Kind: KindInteger, NonEmpty: 2, Empty: 0},
		{Name: "b", Kind: KindInteger, NonEmpty: 1, Empty: 1},
	}
	if !reflect.DeepEqual(result.Columns, want) {
		t.Errorf("Columns = %v, want %v", result.Columns, want)
	}
}

func TestCSVProcessMissingFile(t *testing.T) {
	_, err := NewCSVProcessor(fileloader.DefaultOptions()).Process(filepath.Join(t.TempDir(), "gone.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "people.csv", "name,age\nJohn,30\n")

	result, err := NewCSVProcessor(fileloader.DefaultOptions()).Process(input)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	output := filepath.Join(dir, "people.json")
	if err := WriteJSON(output, result); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	for _, needle := range []string{"\"John\"", "\"rowCount\"", "\"runId\""} {
		if !strings.Contains(text, needle) {
			t.Errorf("output missing %s:\n%s", needle, text)
		}
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"data.csv", "data.json"},
		{"dir/data.xlsx", "dir/data.json"},
		{"data.csv.gz", "data.json"},
		{"noext", "noext.json"},
	}
	for _, tt := range tests {
		if got := OutputPathFor(tt.input); got != tt.want {
			t.Errorf("OutputPathFor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPreviewTable(t *testing.T) {
	headers := []string{"name", "age"}
	rows := []map[string]string{
		{"name": "John", "age": "30"},
		{"name": "Jane", "age": "25"},
		{"name": "Li", "age": "41"},
	}

	table := PreviewTable(headers, rows, 2)
	if !strings.Contains(table, "name") || !strings.Contains(table, "John") {
		t.Errorf("table missing content:\n%s", table)
	}
	if !strings.Contains(table, "... 1 more rows") {
		t.Errorf("table missing truncation notice:\n%s", table)
	}
	if strings.Contains(table, "Li") {
		t.Errorf("table shows rows past the limit:\n%s", table)
	}
}
