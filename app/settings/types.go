// Package settings manages the optional filesift settings file: built-in
// defaults overlaid with per-key overrides from a YAML file.
package settings

// Settings holds tool settings that can be overridden by the user.
type Settings struct {
	// PreviewRows is how many rows the test-* commands print
	PreviewRows int `yaml:"preview_rows" json:"preview_rows"`
	// OutputDir is where derived JSON files are written when no explicit
	// output path is given; empty means next to the input file
	OutputDir string `yaml:"output_dir" json:"output_dir"`
	// NoColor disables colored terminal output
	NoColor bool `yaml:"no_color" json:"no_color"`
	// NoHeaderRow treats the first row of tabular inputs as data
	NoHeaderRow bool `yaml:"no_header_row" json:"no_header_row"`
	// InstanceID is a unique identifier for this filesift installation
	InstanceID string `yaml:"instance_id,omitempty" json:"instance_id,omitempty"`
}

// defaultSettings defines the built-in defaults.
var defaultSettings = Settings{
	PreviewRows: 10,
	OutputDir:   "",
	NoColor:     false,
	NoHeaderRow: false,
}
