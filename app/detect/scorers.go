package detect

import (
	"bytes"
	"regexp"
	"strings"
)

// Recognized extension sets per type. An extension belongs to at most one
// set; unrecognized extensions score zero everywhere.
var (
	csvExtensions   = []string{".csv", ".tsv", ".txt"}
	excelExtensions = []string{".xlsx", ".xls", ".xlsm", ".xlsb"}
	xmlExtensions   = []string{".xml", ".xsd", ".xsl", ".xslt", ".rss", ".atom", ".svg"}
)

// Filename keywords worth a 0.3 hint per type. Matching is substring-based
// on the lower-cased base name, so a single name can score in more than
// one type.
var (
	csvNameKeywords   = []string{"csv", "data", "export"}
	excelNameKeywords = []string{"xlsx", "xls", "spreadsheet", "workbook"}
	xmlNameKeywords   = []string{"xml", "config", "feed", "rss"}
)

// Magic byte prefixes for Excel containers
var (
	// ZIP local-file header, used by .xlsx-style OOXML containers
	zipMagic = []byte{0x50, 0x4B}
	// OLE compound file header, used by legacy .xls
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

var (
	xmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	xmlClosingPattern = regexp.MustCompile(`</[^>]+>`)
)

// CSV separator characters checked by the content scorer
const csvSeparators = ",;\t|"

// SupportedExtensions returns the static recognized extension sets keyed by
// type name. The returned slices are copies; callers may modify them.
func SupportedExtensions() map[string][]string {
	return map[string][]string{
		"csv":   append([]string(nil), csvExtensions...),
		"excel": append([]string(nil), excelExtensions...),
		"xml":   append([]string(nil), xmlExtensions...),
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// scoreExtension awards exactly 1 point to the type owning the extension.
// The extension must be lower-cased and include the leading dot.
func scoreExtension(ext string) ScoreTriple {
	var score ScoreTriple
	switch {
	case containsString(csvExtensions, ext):
		score.CSV = 1
	case containsString(excelExtensions, ext):
		score.Excel = 1
	case containsString(xmlExtensions, ext):
		score.XML = 1
	}
	return score
}

// scoreFilename awards up to 0.3 per type for suggestive keywords in the
// lower-cased base name. Each type is evaluated independently.
func scoreFilename(name string) ScoreTriple {
	var score ScoreTriple
	for _, kw := range csvNameKeywords {
		if strings.Contains(name, kw) {
			score.CSV = 0.3
			break
		}
	}
	for _, kw := range excelNameKeywords {
		if strings.Contains(name, kw) {
			score.Excel = 0.3
			break
		}
	}
	for _, kw := range xmlNameKeywords {
		if strings.Contains(name, kw) {
			score.XML = 0.3
			break
		}
	}
	return score
}

// scoreContent inspects the byte sample for format signatures. XML is
// checked first, then Excel container magic; the CSV separator check only
// runs when neither of those scored, so the triple is mutually exclusive
// in practice.
func scoreContent(sample []byte) ScoreTriple {
	var score ScoreTriple
	if len(sample) == 0 {
		return score
	}

	text := string(sample)

	trimmed := strings.TrimLeft(text, " \t\r\n")
	if strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<") {
		openTags := len(xmlTagPattern.FindAllString(trimmed, -1))
		closeTags := len(xmlClosingPattern.FindAllString(trimmed, -1))
		if openTags > 0 && closeTags > 0 {
			score.XML = 1
		} else if openTags > 0 {
			// Self-closing-only documents still look like XML, just less so
			score.XML = 0.7
		}
	}

	if len(sample) >= 8 {
		if bytes.HasPrefix(sample, zipMagic) || bytes.HasPrefix(sample, oleMagic) {
			score.Excel = 1
		}
	}

	if score.XML == 0 && score.Excel == 0 {
		score.CSV = scoreCSVContent(text)
	}

	return score
}

// scoreCSVContent samples the first 10 non-blank lines and scores by
// separator density: 1 when at least half the lines contain a separator,
// 0.5 when at least one does.
func scoreCSVContent(text string) float64 {
	var sampled, withSeparator int
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sampled++
		if strings.ContainsAny(line, csvSeparators) {
			withSeparator++
		}
		if sampled == 10 {
			break
		}
	}
	if sampled == 0 {
		return 0
	}
	if float64(withSeparator) >= float64(sampled)*0.5 {
		return 1
	}
	if withSeparator > 0 {
		return 0.5
	}
	return 0
}
