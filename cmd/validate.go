package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filesift/app/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a file exists, is non-empty, and is of a supported type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := validate.NewValidator().ValidateFile(args[0])
		printValidation(result)
		if !result.Valid {
			return exitWith(validationExitCode(result), fmt.Errorf("validation failed for %s", args[0]))
		}
		return nil
	},
}

func printValidation(result validate.Result) {
	if result.Valid {
		colorGreen.Printf("✓ %s\n", result.FileInfo.Path)
		fmt.Printf("  Type: %s (%.1f%% confidence)\n", result.FileType, result.Detection.Confidence*100)
	} else {
		colorRed.Printf("✗ %s\n", result.FileInfo.Path)
	}
	if result.FileInfo.Size > 0 {
		fmt.Printf("  Size: %d bytes\n", result.FileInfo.Size)
	}
	if result.FileInfo.Extension != "" {
		fmt.Printf("  Extension: %s\n", result.FileInfo.Extension)
	}
	if result.FileInfo.Hash != "" {
		verbosef("  Hash: %s", result.FileInfo.Hash)
	}
	for _, e := range result.Errors {
		colorRed.Printf("  Error: %s\n", e)
	}
	for _, w := range result.Warnings {
		colorYellow.Printf("  Warning: %s\n", w)
	}
}

// validationExitCode maps a failed validation to the exit code of its
// first error.
func validationExitCode(result validate.Result) int {
	for _, e := range result.Errors {
		switch {
		case strings.HasPrefix(e, "File not found"):
			return exitNotFound
		case e == "File is empty":
			return exitEmptyFile
		case strings.HasPrefix(e, "Unable to determine file type"):
			return exitUndetected
		}
	}
	return exitUnknownError
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
