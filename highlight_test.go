package fuzzy

import (
	"reflect"
	"testing"
)

func TestSpans(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    [][2]int
	}{
		{"empty", nil, nil},
		{"single", []int{3}, [][2]int{{3, 4}}},
		{"contiguous", []int{0, 1, 2}, [][2]int{{0, 3}}},
		{"scattered", []int{0, 2, 6}, [][2]int{{0, 1}, {2, 3}, {6, 7}}},
		{"mixed", []int{3, 4, 7, 8, 9}, [][2]int{{3, 5}, {7, 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Result{Indices: tt.indices}.Spans()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Spans(%v) = %v, want %v", tt.indices, got, tt.want)
			}
		})
	}
}

func TestHighlight(t *testing.T) {
	wrap := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		name    string
		target  string
		indices []int
		want    string
	}{
		{"prefix run", "main.go", []int{0, 1, 2, 3}, "[main].go"},
		{"scattered", "fuzzy finder", []int{0, 2, 6}, "[f]u[z]zy [f]inder"},
		{"full", "abc", []int{0, 1, 2}, "[abc]"},
		{"none", "plain", nil, "plain"},
		{"unicode", "日本語", []int{0, 2}, "[日]本[語]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.target, tt.indices, wrap)
			if got != tt.want {
				t.Errorf("Highlight(%q, %v) = %q, want %q", tt.target, tt.indices, got, tt.want)
			}
		})
	}
}

func TestHighlightFromMatch(t *testing.T) {
	r, ok := Match("cp", "CommandPalette")
	if !ok {
		t.Fatal("expected match")
	}

	wrap := func(s string) string { return "<" + s + ">" }
	got := Highlight("CommandPalette", r.Indices, wrap)
	if got != "<C>ommand<P>alette" {
		t.Errorf("Highlight = %q", got)
	}
}
