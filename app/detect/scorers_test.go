package detect

import "testing"

func TestScoreExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want ScoreTriple
	}{
		{".csv", ScoreTriple{CSV: 1}},
		{".tsv", ScoreTriple{CSV: 1}},
		{".txt", ScoreTriple{CSV: 1}},
		{".xlsx", ScoreTriple{Excel: 1}},
		{".xls", ScoreTriple{Excel: 1}},
		{".xlsm", ScoreTriple{Excel: 1}},
		{".xlsb", ScoreTriple{Excel: 1}},
		{".xml", ScoreTriple{XML: 1}},
		{".xsd", ScoreTriple{XML: 1}},
		{".svg", ScoreTriple{XML: 1}},
		{".rss", ScoreTriple{XML: 1}},
		{".atom", ScoreTriple{XML: 1}},
		{".pdf", ScoreTriple{}},
		{"", ScoreTriple{}},
	}

	for _, tt := range tests {
		got := scoreExtension(tt.ext)
		if got != tt.want {
			t.Errorf("scoreExtension(%q) = %+v, want %+v", tt.ext, got, tt.want)
		}
	}
}

func TestScoreFilename(t *testing.T) {
	tests := []struct {
		name string
		want ScoreTriple
	}{
		{"report.csv", ScoreTriple{CSV: 0.3}},
		{"export_2024.bin", ScoreTriple{CSV: 0.3}},
		{"monthly_spreadsheet", ScoreTriple{Excel: 0.3}},
		{"workbook1", ScoreTriple{Excel: 0.3}},
		{"app_config", ScoreTriple{XML: 0.3}},
		{"newsfeed", ScoreTriple{XML: 0.3}},
		{"report", ScoreTriple{}},
		// "xlsx" contains "xls"; both keyword lists hit Excel only
		{"output.xlsx", ScoreTriple{Excel: 0.3}},
		// overlapping keywords score independently per type
		{"data_feed", ScoreTriple{CSV: 0.3, XML: 0.3}},
	}

	for _, tt := range tests {
		got := scoreFilename(tt.name)
		if got != tt.want {
			t.Errorf("scoreFilename(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestScoreContentXML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"declaration with pairs", "<?xml version=\"1.0\"?>\n<root><item>x</item></root>", 1},
		{"bare element with pairs", "<root>\n  <a>1</a>\n</root>", 1},
		{"leading whitespace", "\n\t  <?xml version=\"1.0\"?><r></r>", 1},
		{"self closing only", "<?xml version=\"1.0\"?>", 0.7},
		{"not xml", "name,age\n1,2", 0},
	}

	for _, tt := range tests {
		got := scoreContent([]byte(tt.content))
		if got.XML != tt.want {
			t.Errorf("%s: XML score = %v, want %v", tt.name, got.XML, tt.want)
		}
	}
}

func TestScoreContentExcelMagic(t *testing.T) {
	zip := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 16)...)
	ole := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 16)...)

	if got := scoreContent(zip); got.Excel != 1 {
		t.Errorf("ZIP magic: Excel score = %v, want 1", got.Excel)
	}
	if got := scoreContent(ole); got.Excel != 1 {
		t.Errorf("OLE magic: Excel score = %v, want 1", got.Excel)
	}
	// Too short for the magic check
	if got := scoreContent([]byte{0x50, 0x4B}); got.Excel != 0 {
		t.Errorf("short sample: Excel score = %v, want 0", got.Excel)
	}
}

func TestScoreContentCSV(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"all lines separated", "a,b,c\n1,2,3\n4,5,6", 1},
		{"half the lines", "plain line\na;b;c", 1},
		{"minority of lines", "one\ntwo\nthree\nfour\npipe|line", 0.5},
		{"no separators", "just\nplain\nwords", 0},
		{"tab separated", "a\tb\n1\t2", 1},
		{"blank lines ignored", "\n\na,b\n\n1,2\n", 1},
	}

	for _, tt := range tests {
		got := scoreContent([]byte(tt.content))
		if got.CSV != tt.want {
			t.Errorf("%s: CSV score = %v, want %v", tt.name, got.CSV, tt.want)
		}
	}
}

func TestScoreContentEmpty(t *testing.T) {
	if got := scoreContent(nil); got != (ScoreTriple{}) {
		t.Errorf("empty sample scored %+v, want all zero", got)
	}
}

func TestScoreContentCSVSkippedWhenXMLScores(t *testing.T) {
	// Commas inside an XML document must not trigger the CSV check
	got := scoreContent([]byte("<root><v>1,2,3</v></root>"))
	if got.XML != 1 || got.CSV != 0 {
		t.Errorf("got %+v, want XML=1 CSV=0", got)
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	if len(exts["csv"]) != 3 || len(exts["excel"]) != 4 || len(exts["xml"]) != 7 {
		t.Errorf("unexpected extension sets: %v", exts)
	}
	// Returned slices are copies
	exts["csv"][0] = ".tampered"
	if SupportedExtensions()["csv"][0] != ".csv" {
		t.Error("SupportedExtensions leaked internal state")
	}
}
