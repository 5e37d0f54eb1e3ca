// Package cmd defines the filesift command-line interface. Commands print
// human-readable progress and delegate the actual work to the detect,
// validate and processor packages.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"filesift/app/settings"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	// cfg holds the effective settings, loaded before any command runs
	cfg settings.Settings

	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorRed    = color.New(color.FgRed, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "filesift",
	Short: "Detect, validate and convert CSV, Excel and XML files to JSON",
	Long: `filesift ingests CSV, Excel and XML files, validates them, and converts
them to JSON.

Its detector classifies an unknown file by combining three signals: the
file extension, an 8KB content sample, and keywords in the filename. The
combined score yields a best-guess type with a confidence value and the
reasons behind the guess.

Example usage:
  filesift detect export.dat           # guess the file type
  filesift process export.dat          # detect, validate and convert to JSON
  filesift convert-csv data.csv -o out.json
  filesift batch ./drops --pattern '**/*.csv'

Compressed inputs (.gz, .bz2, .xz) are decompressed transparently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Persisting the instance ID is best-effort; a read-only config
		// dir should not stop the run.
		var err error
		cfg, err = settings.EnsureInstanceID(cfgFile)
		if err != nil {
			cfg, err = settings.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
		}
		if noColor || cfg.NoColor {
			color.NoColor = true
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command and exits the process with a code that
// reflects the kind of failure, if any.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		colorRed.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// verbosef prints diagnostic output when --verbose is set
func verbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the settings file (default is the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
