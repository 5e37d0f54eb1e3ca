package processor

import "testing"

func TestInferKind(t *testing.T) {
	tests := []struct {
		name   string
		column string
		values []string
		want   string
	}{
		{"integers", "count", []string{"1", "42", "-7"}, KindInteger},
		{"floats", "price", []string{"1.5", "2", "0.25"}, KindFloat},
		{"booleans", "active", []string{"true", "FALSE", "true"}, KindBoolean},
		{"iso dates", "created", []string{"2024-01-15", "2024-06-01"}, KindTimestamp},
		{"rfc3339", "seen", []string{"2024-01-15T10:30:00Z"}, KindTimestamp},
		{"epoch with name hint", "timestamp", []string{"1700000000", "1700003600"}, KindTimestamp},
		{"epoch without name hint", "id", []string{"1700000000", "1700003600"}, KindInteger},
		{"mixed", "notes", []string{"1", "hello"}, KindText},
		{"all empty", "blank", []string{"", " "}, KindEmpty},
		{"empties ignored", "qty", []string{"3", "", "9"}, KindInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inferKind(tt.column, tt.values); got != tt.want {
				t.Errorf("inferKind(%q, %v) = %q, want %q", tt.column, tt.values, got, tt.want)
			}
		})
	}
}

func TestNameSuggestsTimestamp(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"@timestamp", true},
		{"event_time", true},
		{"DateTime", true},
		{"ts", true},
		{"count", false},
		{"name", false},
	}
	for _, tt := range tests {
		if got := nameSuggestsTimestamp(tt.name); got != tt.want {
			t.Errorf("nameSuggestsTimestamp(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
