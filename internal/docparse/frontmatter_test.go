package docparse

import (
	"reflect"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected FrontMatter
	}{
		{
			name: "title and tags",
			lines: []string{
				"---",
				"title: Getting Started",
				"tags:",
				"  - guide",
				"  - intro",
				"---",
				"# Heading",
			},
			expected: FrontMatter{Title: "Getting Started", Tags: []string{"guide", "intro"}},
		},
		{
			name:     "no front matter",
			lines:    []string{"# Heading", "body"},
			expected: FrontMatter{},
		},
		{
			name:     "unterminated block",
			lines:    []string{"---", "title: Broken", "body"},
			expected: FrontMatter{},
		},
		{
			name:     "invalid yaml",
			lines:    []string{"---", ": : :", "---"},
			expected: FrontMatter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFrontMatter(tt.lines)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseFrontMatter = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
