// Package processor converts validated CSV, Excel and XML files into JSON.
// Each processor wraps a parsing library, reshapes its output into a
// result object with timing and provenance metadata, and can write that
// result to a JSON file.
package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"

	"filesift/app/fileloader"
)

// Metadata is attached to every processor result
type Metadata struct {
	// RunID uniquely identifies this processing run
	RunID string `json:"runId"`
	// SourceFile is the input path as given by the caller
	SourceFile string `json:"sourceFile"`
	// Format names the processor that produced the result
	Format string `json:"format"`
	// DurationMS is how long parsing and reshaping took, in milliseconds
	DurationMS float64 `json:"durationMs"`
	// ProcessedAt is when the run finished
	ProcessedAt time.Time `json:"processedAt"`
}

// newMetadata stamps a result with provenance and timing
func newMetadata(sourceFile, format string, started time.Time) Metadata {
	return Metadata{
		RunID:       uuid.New().String(),
		SourceFile:  sourceFile,
		Format:      format,
		DurationMS:  float64(time.Since(started).Microseconds()) / 1000,
		ProcessedAt: time.Now().UTC(),
	}
}

// WriteJSON serializes v as indented JSON to the given path
func WriteJSON(path string, v interface{}) error {
	data, err := oj.Marshal(v, 2)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// MarshalJSON serializes v as indented JSON and returns it as a string
func MarshalJSON(v interface{}) (string, error) {
	data, err := oj.Marshal(v, 2)
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}
	return string(data), nil
}

// OutputPathFor derives the JSON output path for an input file when the
// caller did not provide one: the input path with its extension (and any
// compression suffix) replaced by .json.
func OutputPathFor(inputPath string) string {
	base := fileloader.StripCompressionExt(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
