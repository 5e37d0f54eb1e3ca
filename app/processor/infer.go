package processor

import (
	"strconv"
	"strings"
	"time"
)

// Column kinds reported in stats. A column gets the most specific kind
// that fits every non-empty cell, falling back to "text".
const (
	KindEmpty     = "empty"
	KindBoolean   = "boolean"
	KindInteger   = "integer"
	KindFloat     = "float"
	KindTimestamp = "timestamp"
	KindText      = "text"
)

// timestampLayouts covers the formats commonly seen in exports and log
// dumps. Explicit-offset layouts come first so timezone information is
// not silently dropped.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// inferKind classifies a column from its non-empty values. The column
// name acts as a hint for numeric timestamps: a column of plain integers
// named "timestamp" is classified as a timestamp, not an integer.
func inferKind(name string, values []string) string {
	nonEmpty := 0
	allBool, allInt, allFloat, allTime := true, true, true, true
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		nonEmpty++
		if !isBooleanValue(v) {
			allBool = false
		}
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allFloat = false
		}
		if !isTimestampValue(v) {
			allTime = false
		}
	}
	if nonEmpty == 0 {
		return KindEmpty
	}
	switch {
	case allBool:
		return KindBoolean
	case allInt && allTime && nameSuggestsTimestamp(name):
		return KindTimestamp
	case allInt:
		return KindInteger
	case allFloat:
		return KindFloat
	case allTime:
		return KindTimestamp
	default:
		return KindText
	}
}

func isBooleanValue(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

// isTimestampValue reports whether s parses as a date or as epoch
// seconds/milliseconds. Epoch integers are tried first since they are
// common in exports and skip the layout table entirely.
func isTimestampValue(s string) bool {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		// Plausible epoch range: 2001-09-09 onwards in seconds, or any
		// 13+ digit millisecond value.
		return n >= 1_000_000_000
	}
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

var timestampNameHints = []string{"@timestamp", "timestamp", "datetime", "date", "time", "ts"}

func nameSuggestsTimestamp(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, hint := range timestampNameHints {
		if lower == hint || strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
