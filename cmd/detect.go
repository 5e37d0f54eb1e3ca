package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filesift/app/detect"
	"filesift/app/processor"
)

var detectJSON bool

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Guess the type of a file from its extension, content and name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result := detect.NewDetector().DetectFileType(path)

		if detectJSON {
			out, err := processor.MarshalJSON(result)
			if err != nil {
				return err
			}
			fmt.Println(out)
			if result.Type == detect.FileTypeUnknown {
				return exitWith(exitUndetected, fmt.Errorf("unable to determine file type of %s", path))
			}
			return nil
		}

		if result.Type == detect.FileTypeUnknown {
			colorYellow.Printf("Could not determine the type of %s\n", path)
			for _, reason := range result.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
			return exitWith(exitUndetected, fmt.Errorf("unable to determine file type of %s", path))
		}

		colorGreen.Printf("%s\n", result.Type)
		fmt.Printf("Confidence: %.1f%%\n", result.Confidence*100)
		fmt.Println("Reasons:")
		for _, reason := range result.Reasons {
			fmt.Printf("  - %s\n", reason)
		}

		colorCyan.Printf("\nNext: filesift %s %s\n", convertCommandFor(result.Type), path)
		return nil
	},
}

// convertCommandFor names the convert subcommand matching a detected type
func convertCommandFor(ft detect.FileType) string {
	switch ft {
	case detect.FileTypeCSV:
		return "convert-csv"
	case detect.FileTypeExcel:
		return "convert-excel"
	case detect.FileTypeXML:
		return "convert-xml"
	default:
		return "process"
	}
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Print the detection result as JSON")
	rootCmd.AddCommand(detectCmd)
}
