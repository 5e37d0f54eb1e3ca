// Package detect implements heuristic file type detection for the formats
// filesift can convert (CSV, Excel, XML). Detection combines three weighted
// signals (extension, content sample, filename) into a single best-guess
// type with a confidence value and human-readable reasons.
package detect

// FileType represents the type of data file being processed
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCSV
	FileTypeExcel
	FileTypeXML
)

// String returns the string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeCSV:
		return "CSV"
	case FileTypeExcel:
		return "Excel"
	case FileTypeXML:
		return "XML"
	default:
		return "Unknown"
	}
}

// ScoreTriple accumulates detection points per candidate type.
// Three triples are produced per detection call (extension, content,
// filename) and summed elementwise; the max component decides the type.
type ScoreTriple struct {
	CSV   float64
	Excel float64
	XML   float64
}

// Add returns the elementwise sum of two triples
func (s ScoreTriple) Add(other ScoreTriple) ScoreTriple {
	return ScoreTriple{
		CSV:   s.CSV + other.CSV,
		Excel: s.Excel + other.Excel,
		XML:   s.XML + other.XML,
	}
}

// Max returns the largest component of the triple
func (s ScoreTriple) Max() float64 {
	max := s.CSV
	if s.Excel > max {
		max = s.Excel
	}
	if s.XML > max {
		max = s.XML
	}
	return max
}

// For returns the component for the given type, or 0 for unknown types
func (s ScoreTriple) For(ft FileType) float64 {
	switch ft {
	case FileTypeCSV:
		return s.CSV
	case FileTypeExcel:
		return s.Excel
	case FileTypeXML:
		return s.XML
	default:
		return 0
	}
}

// Result is the outcome of a single detection call. It is created fresh
// per call and never mutated afterwards. A zero Confidence together with
// FileTypeUnknown signals total ambiguity.
type Result struct {
	Type       FileType `json:"detectedType"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}
