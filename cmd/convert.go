package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filesift/app/fileloader"
	"filesift/app/processor"
)

var (
	convertOutput      string
	convertSheet       string
	convertNoHeaderRow bool
)

var convertCSVCmd = &cobra.Command{
	Use:   "convert-csv <file>",
	Short: "Convert a CSV file to JSON without type detection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := convertOptions()
		result, err := processor.NewCSVProcessor(options).Process(args[0])
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		return writeConverted(args[0], result)
	},
}

var convertExcelCmd = &cobra.Command{
	Use:   "convert-excel <file>",
	Short: "Convert an Excel workbook to JSON without type detection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := convertOptions()
		options.SheetName = convertSheet
		result, err := processor.NewExcelProcessor(options).Process(args[0])
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		return writeConverted(args[0], result)
	},
}

var convertXMLCmd = &cobra.Command{
	Use:   "convert-xml <file>",
	Short: "Convert an XML document to JSON without type detection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := processor.NewXMLProcessor().Process(args[0])
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		return writeConverted(args[0], result)
	},
}

func convertOptions() fileloader.Options {
	options := fileloader.DefaultOptions()
	options.NoHeaderRow = convertNoHeaderRow || cfg.NoHeaderRow
	return options
}

func writeConverted(inputPath string, result interface{}) error {
	output := resolveOutputPath(inputPath, convertOutput)
	if err := processor.WriteJSON(output, result); err != nil {
		return exitWith(exitParseFailure, fmt.Errorf("writing %s: %w", output, err))
	}
	colorGreen.Printf("Wrote %s\n", output)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{convertCSVCmd, convertExcelCmd, convertXMLCmd} {
		c.Flags().StringVarP(&convertOutput, "output", "o", "", "Output JSON path (default: input path with .json extension)")
		rootCmd.AddCommand(c)
	}
	convertCSVCmd.Flags().BoolVar(&convertNoHeaderRow, "no-header-row", false, "Treat the first row as data, not headers")
	convertExcelCmd.Flags().BoolVar(&convertNoHeaderRow, "no-header-row", false, "Treat the first row as data, not headers")
	convertExcelCmd.Flags().StringVar(&convertSheet, "sheet", "", "Sheet to read (default: first sheet)")
}
