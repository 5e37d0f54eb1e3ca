package processor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"filesift/app/fileloader"
)

// XMLSummary describes the overall shape of an XML document
type XMLSummary struct {
	RootElement    string   `json:"rootElement"`
	ElementCount   int      `json:"elementCount"`
	MaxDepth       int      `json:"maxDepth"`
	Namespaces     []string `json:"namespaces"`
	ElementNames   []string `json:"elementNames"`
	AttributeNames []string `json:"attributeNames"`
}

// XMLResult holds a nested object mirroring the document's element
// structure plus a structure summary.
type XMLResult struct {
	Metadata Metadata               `json:"metadata"`
	Document map[string]interface{} `json:"document"`
	Summary  XMLSummary             `json:"summary"`
}

// XMLProcessor converts XML documents into nested JSON objects
type XMLProcessor struct{}

// NewXMLProcessor creates an XML processor
func NewXMLProcessor() *XMLProcessor {
	return &XMLProcessor{}
}

// Process parses the XML file at path into a nested object. Attributes
// appear under "@name" keys, mixed text under "#text", and repeated
// sibling elements collapse into arrays.
func (p *XMLProcessor) Process(path string) (*XMLResult, error) {
	started := time.Now()

	data, err := fileloader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	document, summary, err := parseXML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	result := &XMLResult{
		Document: document,
		Summary:  summary,
	}
	result.Metadata = newMetadata(path, "xml", started)
	return result, nil
}

// xmlFrame is one open element during the token walk
type xmlFrame struct {
	name     string
	attrs    map[string]interface{}
	children map[string]interface{}
	text     strings.Builder
}

func parseXML(data []byte) (map[string]interface{}, XMLSummary, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var summary XMLSummary
	namespaces := make(map[string]bool)
	elementNames := make(map[string]bool)
	attributeNames := make(map[string]bool)

	var stack []*xmlFrame
	root := map[string]interface{}{}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, XMLSummary{}, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			summary.ElementCount++
			elementNames[tok.Name.Local] = true
			if summary.RootElement == "" {
				summary.RootElement = tok.Name.Local
			}

			frame := &xmlFrame{
				name:     tok.Name.Local,
				attrs:    map[string]interface{}{},
				children: map[string]interface{}{},
			}
			for _, attr := range tok.Attr {
				// xmlns declarations record namespace prefixes rather
				// than becoming attributes of the element
				if attr.Name.Space == "xmlns" {
					namespaces[attr.Name.Local] = true
					continue
				}
				if attr.Name.Local == "xmlns" {
					continue
				}
				attributeNames[attr.Name.Local] = true
				frame.attrs["@"+attr.Name.Local] = attr.Value
			}

			stack = append(stack, frame)
			if len(stack) > summary.MaxDepth {
				summary.MaxDepth = len(stack)
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(tok)
			}

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			value := frame.fold()
			if len(stack) == 0 {
				root[frame.name] = value
			} else {
				stack[len(stack)-1].addChild(frame.name, value)
			}
		}
	}

	if summary.RootElement == "" {
		return nil, XMLSummary{}, fmt.Errorf("document has no elements")
	}

	summary.Namespaces = sortedKeys(namespaces)
	summary.ElementNames = sortedKeys(elementNames)
	summary.AttributeNames = sortedKeys(attributeNames)
	return root, summary, nil
}

// fold collapses a finished element into its JSON representation: a plain
// string for text-only leaves, otherwise a map of attributes, children
// and any mixed text.
func (f *xmlFrame) fold() interface{} {
	text := strings.TrimSpace(f.text.String())

	if len(f.attrs) == 0 && len(f.children) == 0 {
		return text
	}

	m := make(map[string]interface{}, len(f.attrs)+len(f.children)+1)
	for k, v := range f.attrs {
		m[k] = v
	}
	for k, v := range f.children {
		m[k] = v
	}
	if text != "" {
		m["#text"] = text
	}
	return m
}

// addChild attaches a folded child, converting repeated sibling names
// into arrays.
func (f *xmlFrame) addChild(name string, value interface{}) {
	existing, ok := f.children[name]
	if !ok {
		f.children[name] = value
		return
	}
	if list, isList := existing.([]interface{}); isList {
		f.children[name] = append(list, value)
		return
	}
	f.children[name] = []interface{}{existing, value}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
