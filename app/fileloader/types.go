// Package fileloader provides the low-level file reading primitives shared
// by the format processors: CSV and Excel row readers, header
// normalization, transparent decompression of gzip/bzip2/xz inputs, and
// glob-based file discovery for batch runs.
package fileloader

// Options controls how tabular files are interpreted
type Options struct {
	// NoHeaderRow treats the first row as data and generates synthetic
	// Unnamed_A style headers instead
	NoHeaderRow bool
	// SheetName selects an Excel sheet by name; empty means the first sheet
	SheetName string
}

// DefaultOptions returns the default parsing options
func DefaultOptions() Options {
	return Options{}
}
