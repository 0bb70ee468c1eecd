package game

import "testing"

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"", 10, ""},
		{"one two three", 0, "one two three"},
		{"one two three", 7, "one two\nthree"},
		{"one  two\tthree", 20, "one two three"},
		{"a verylongword b", 4, "a\nverylongword\nb"},
	}
	for _, tt := range tests {
		if got := wrapText(tt.in, tt.width); got != tt.want {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	if got := columns(68); got != 10 {
		t.Errorf("columns(68) = %d, want 10", got)
	}
}
