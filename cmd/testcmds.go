package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"filesift/app/fileloader"
	"filesift/app/processor"
)

// The test-* commands run a processor end to end and print a preview
// instead of writing JSON. With no file argument they generate a small
// sample in a temp directory, which makes them useful as a smoke check
// on a fresh install.

var testCSVCmd = &cobra.Command{
	Use:   "test-csv [file]",
	Short: "Run the CSV processor and print a preview table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cleanup, err := testInput(args, sampleCSV)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		defer cleanup()

		result, err := processor.NewCSVProcessor(fileloader.DefaultOptions()).Process(path)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		printTabular(path, result.Headers, result.Rows, result.RowCount, result.ColumnCount, result.Columns)
		return nil
	},
}

var testExcelCmd = &cobra.Command{
	Use:   "test-excel [file]",
	Short: "Run the Excel processor and print a preview table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cleanup, err := testInput(args, sampleWorkbook)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		defer cleanup()

		result, err := processor.NewExcelProcessor(fileloader.DefaultOptions()).Process(path)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		colorCyan.Printf("Sheet: %s\n", result.Sheet.Name)
		printTabular(path, result.Headers, result.Rows, result.RowCount, result.ColumnCount, result.Columns)
		return nil
	},
}

var testXMLCmd = &cobra.Command{
	Use:   "test-xml [file]",
	Short: "Run the XML processor and print a structure summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cleanup, err := testInput(args, sampleXML)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		defer cleanup()

		result, err := processor.NewXMLProcessor().Process(path)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		colorCyan.Printf("File: %s\n", path)
		fmt.Printf("Root element: %s\n", result.Summary.RootElement)
		fmt.Printf("Elements: %d (max depth %d)\n", result.Summary.ElementCount, result.Summary.MaxDepth)
		if len(result.Summary.Namespaces) > 0 {
			fmt.Printf("Namespaces: %s\n", strings.Join(result.Summary.Namespaces, ", "))
		}
		fmt.Printf("Element names: %s\n", strings.Join(result.Summary.ElementNames, ", "))
		if len(result.Summary.AttributeNames) > 0 {
			fmt.Printf("Attribute names: %s\n", strings.Join(result.Summary.AttributeNames, ", "))
		}
		return nil
	},
}

func printTabular(path string, headers []string, rows []map[string]string, rowCount, columnCount int, columns []processor.ColumnStats) {
	colorCyan.Printf("File: %s\n", path)
	fmt.Printf("%d rows, %d columns\n\n", rowCount, columnCount)
	fmt.Println(processor.PreviewTable(headers, rows, cfg.PreviewRows))
	if verbose {
		fmt.Println()
		for _, c := range columns {
			fmt.Printf("  %-20s %d non-empty, %d empty\n", c.Name, c.NonEmpty, c.Empty)
		}
	}
}

// testInput returns the file to process. When args is empty the generate
// function writes a sample into a temp directory and cleanup removes it.
func testInput(args []string, generate func(dir string) (string, error)) (string, func(), error) {
	if len(args) == 1 {
		return args[0], func() {}, nil
	}
	dir, err := os.MkdirTemp("", "filesift-sample-")
	if err != nil {
		return "", nil, err
	}
	path, err := generate(dir)
	if err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	verbosef("Generated sample file %s", path)
	return path, func() { os.RemoveAll(dir) }, nil
}

func sampleCSV(dir string) (string, error) {
	path := filepath.Join(dir, "sample.csv")
	data := "id,name,quantity\n1,widget,12\n2,gadget,7\n3,sprocket,\n"
	return path, os.WriteFile(path, []byte(data), 0o644)
}

func sampleWorkbook(dir string) (string, error) {
	path := filepath.Join(dir, "sample.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"id", "name", "quantity"},
		{1, "widget", 12},
		{2, "gadget", 7},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return "", err
		}
	}
	return path, f.SaveAs(path)
}

func sampleXML(dir string) (string, error) {
	path := filepath.Join(dir, "sample.xml")
	data := `<?xml version="1.0"?>
<inventory>
  <item id="1"><name>widget</name><quantity>12</quantity></item>
  <item id="2"><name>gadget</name><quantity>7</quantity></item>
</inventory>
`
	return path, os.WriteFile(path, []byte(data), 0o644)
}

func init() {
	rootCmd.AddCommand(testCSVCmd, testExcelCmd, testXMLCmd)
}
