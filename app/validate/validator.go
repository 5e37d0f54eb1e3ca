// Package validate orchestrates file checks ahead of conversion: existence,
// emptiness and size checks plus type detection, assembled into a pass/fail
// report with separate error and warning lists.
package validate

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"filesift/app/detect"
)

// largeFileThreshold is the size above which a warning is attached.
// A file exactly at the threshold does not trigger the warning.
const largeFileThreshold = 100 * 1024 * 1024

// lowConfidenceThreshold is the detection confidence below which the
// result is flagged as ambiguous. Ambiguity is a warning, not a failure.
const lowConfidenceThreshold = 0.7

// FileInfo carries the metadata gathered while validating a file
type FileInfo struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
	// MIMEHint is derived from the extension, best-effort; empty when unknown
	MIMEHint string `json:"mimeHint,omitempty"`
	// Hash is a HighwayHash of the file content, best-effort; empty on error
	Hash string `json:"hash,omitempty"`
}

// Result is a validation report. Valid is false the moment any error is
// appended; warnings never affect validity.
type Result struct {
	Valid    bool            `json:"isValid"`
	FileType detect.FileType `json:"fileType"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	FileInfo FileInfo        `json:"fileInfo"`
	// Detection holds the underlying detection result for callers that
	// want the confidence and reasons
	Detection detect.Result `json:"detection"`
}

// Validator runs pre-conversion checks against files on disk
type Validator struct {
	detector *detect.Detector
}

// NewValidator creates a validator with a fresh detector
func NewValidator() *Validator {
	return &Validator{detector: detect.NewDetector()}
}

// ValidateFile checks that the file at path exists, is non-empty, and is of
// a supported type. It never returns an error; all failures are reported
// through the result's Errors and Warnings lists.
func (v *Validator) ValidateFile(path string) (result Result) {
	result.Valid = true

	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Validation error: %v", r))
			result.Valid = false
		}
	}()

	stat, err := os.Stat(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("File not found: %s", path))
		result.Valid = false
		return result
	}

	ext := strings.ToLower(filepath.Ext(path))
	result.FileInfo = FileInfo{
		Path:      path,
		Size:      stat.Size(),
		Extension: ext,
		MIMEHint:  mime.TypeByExtension(ext),
	}
	if hash, err := hashFile(path); err == nil {
		result.FileInfo.Hash = hash
	}

	if stat.Size() == 0 {
		result.Errors = append(result.Errors, "File is empty")
		result.Valid = false
		return result
	}

	detection := v.detector.DetectFileType(path)
	result.Detection = detection
	result.FileType = detection.Type

	if detection.Confidence < lowConfidenceThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Low confidence in detected file type (%.0f%%)", detection.Confidence*100))
		result.Warnings = append(result.Warnings,
			"Detection reasons: "+strings.Join(detection.Reasons, "; "))
	}

	if exceedsLargeFileThreshold(stat.Size()) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Large file (%d bytes); processing may be slow", stat.Size()))
	}

	if detection.Type == detect.FileTypeUnknown {
		result.Errors = append(result.Errors,
			"Unable to determine file type. Supported types: CSV, Excel (.xlsx, .xls), XML")
		result.Valid = false
	}

	return result
}

// exceedsLargeFileThreshold reports whether size is strictly over the
// large-file warning threshold.
func exceedsLargeFileThreshold(size int64) bool {
	return size > largeFileThreshold
}

// ProcessorForFile returns the name of the processor to use for the file,
// or "" when validation fails or the type cannot be determined.
func (v *Validator) ProcessorForFile(path string) string {
	result := v.ValidateFile(path)
	if !result.Valid {
		return ""
	}
	switch result.FileType {
	case detect.FileTypeCSV:
		return "csv"
	case detect.FileTypeExcel:
		return "excel"
	case detect.FileTypeXML:
		return "xml"
	default:
		return ""
	}
}

// SupportedExtensions returns the recognized extension sets keyed by type name
func (v *Validator) SupportedExtensions() map[string][]string {
	return detect.SupportedExtensions()
}

// IsFileTypeSupported reports whether the file validates cleanly and
// resolves to a supported type.
func (v *Validator) IsFileTypeSupported(path string) bool {
	result := v.ValidateFile(path)
	return result.Valid && result.FileType != detect.FileTypeUnknown
}
