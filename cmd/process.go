package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"filesift/app/detect"
	"filesift/app/fileloader"
	"filesift/app/processor"
	"filesift/app/validate"
)

var (
	processOutput string
	processSheet  string
)

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Validate a file, pick the right processor, and convert it to JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result := validate.NewValidator().ValidateFile(path)
		printValidation(result)
		if !result.Valid {
			return exitWith(validationExitCode(result), fmt.Errorf("validation failed for %s", path))
		}

		output := resolveOutputPath(path, processOutput)
		if err := convertFile(path, result.FileType, output); err != nil {
			return exitWith(exitParseFailure, err)
		}
		colorGreen.Printf("Wrote %s\n", output)
		return nil
	},
}

// convertFile runs the processor for the detected type and writes the
// result as JSON.
func convertFile(path string, fileType detect.FileType, output string) error {
	options := fileloader.Options{NoHeaderRow: cfg.NoHeaderRow, SheetName: processSheet}

	var result interface{}
	var err error
	switch fileType {
	case detect.FileTypeCSV:
		result, err = processor.NewCSVProcessor(options).Process(path)
	case detect.FileTypeExcel:
		result, err = processor.NewExcelProcessor(options).Process(path)
	case detect.FileTypeXML:
		result, err = processor.NewXMLProcessor().Process(path)
	default:
		return fmt.Errorf("no processor for type %s", fileType)
	}
	if err != nil {
		return err
	}

	return processor.WriteJSON(output, result)
}

// resolveOutputPath picks the JSON output location: the explicit -o path
// if given, otherwise derived from the input name, placed in the
// configured output directory when one is set.
func resolveOutputPath(inputPath, explicit string) string {
	if explicit != "" {
		return explicit
	}
	derived := processor.OutputPathFor(inputPath)
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, filepath.Base(derived))
	}
	return derived
}

func init() {
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "Output JSON path (default: input path with .json extension)")
	processCmd.Flags().StringVar(&processSheet, "sheet", "", "Excel sheet to read (default: first sheet)")
	rootCmd.AddCommand(processCmd)
}
