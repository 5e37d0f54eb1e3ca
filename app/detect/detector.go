package detect

import (
	"fmt"
	"path/filepath"
	"strings"
)

// scoreDivisor normalizes the combined winning score into a confidence
// value. The theoretical maximum combined score per type is 2.3 (1 point
// extension + 1 point content + 0.3 filename) but the divisor is fixed at
// 3, so confidence tops out below 77%. This arithmetic is part of the
// observable contract and must not be changed.
const scoreDivisor = 3

// Detector classifies a file as CSV, Excel or XML by combining extension,
// content-sample and filename signals. It holds no state; a Detector is
// safe for concurrent use and repeated calls on an unchanged file yield
// identical results.
type Detector struct{}

// NewDetector creates a new file type detector
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFileType classifies the file at path. It never fails: read errors
// degrade detection to extension/filename-only scoring and are recorded
// as reasons on the result.
func (d *Detector) DetectFileType(path string) Result {
	result := Result{Type: FileTypeUnknown}

	ext := strings.ToLower(filepath.Ext(path))
	// Keyword matching runs on the name without its extension so ".csv"
	// itself never counts as a filename hint on top of the extension score.
	base := filepath.Base(path)
	name := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	sample, err := sampleContent(path)
	if err != nil {
		sample = nil
		result.Reasons = append(result.Reasons, fmt.Sprintf("Could not sample file content: %v", err))
	}

	extScore := scoreExtension(ext)
	contentScore := scoreContent(sample)
	nameScore := scoreFilename(name)
	combined := extScore.Add(contentScore).Add(nameScore)

	maxScore := combined.Max()
	if maxScore == 0 {
		return result
	}

	// Tie-break priority: CSV beats Excel beats XML
	switch maxScore {
	case combined.CSV:
		result.Type = FileTypeCSV
	case combined.Excel:
		result.Type = FileTypeExcel
	default:
		result.Type = FileTypeXML
	}

	result.Confidence = maxScore / scoreDivisor
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	result.Reasons = append(result.Reasons, fmt.Sprintf("%s indicators found", result.Type))
	if extScore.For(result.Type) > 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf("File extension matches %s", result.Type))
	}
	if contentScore.For(result.Type) > 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf("File content matches %s format", result.Type))
	}
	if nameScore.For(result.Type) > 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf("Filename suggests %s format", result.Type))
	}

	return result
}
