package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filesift/app/fileloader"
	"filesift/app/validate"
)

var batchPattern string

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Detect and convert every matching file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := fileloader.Discover(args[0], batchPattern)
		if err != nil {
			return exitWith(exitParseFailure, err)
		}
		if len(files) == 0 {
			colorYellow.Printf("No files matching %q under %s\n", batchPattern, args[0])
			return nil
		}

		validator := validate.NewValidator()
		converted, skipped, failed := 0, 0, 0
		for _, path := range files {
			result := validator.ValidateFile(path)
			if !result.Valid {
				colorYellow.Printf("skip %s: %s\n", path, result.Errors[0])
				skipped++
				continue
			}
			output := resolveOutputPath(path, "")
			if err := convertFile(path, result.FileType, output); err != nil {
				colorRed.Printf("fail %s: %v\n", path, err)
				failed++
				continue
			}
			verbosef("Wrote %s", output)
			converted++
		}

		fmt.Printf("%d converted, %d skipped, %d failed\n", converted, skipped, failed)
		if failed > 0 {
			return exitWith(exitParseFailure, fmt.Errorf("%d files failed to convert", failed))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "**/*", "Glob pattern applied relative to the directory")
	rootCmd.AddCommand(batchCmd)
}
