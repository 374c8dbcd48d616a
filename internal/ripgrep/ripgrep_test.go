package ripgrep

import (
	"reflect"
	"testing"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		expected []Hit
	}{
		{
			name: "hits with context and separators",
			out: "/docs/a.md:3:export class OrderService {\n" +
				"/docs/a.md-4-  private items\n" +
				"--\n" +
				"/docs/b.md:10:renderChart(data)\n",
			expected: []Hit{
				{Path: "/docs/a.md", Line: 3, Text: "export class OrderService {"},
				{Path: "/docs/b.md", Line: 10, Text: "renderChart(data)"},
			},
		},
		{
			name:     "empty output",
			out:      "",
			expected: nil,
		},
		{
			name:     "text containing colons",
			out:      "/docs/a.md:7:see http://example.com: details\n",
			expected: []Hit{{Path: "/docs/a.md", Line: 7, Text: "see http://example.com: details"}},
		},
		{
			name:     "malformed line ignored",
			out:      "no line number here\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOutput(tt.out)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseOutput = %v, want %v", got, tt.expected)
			}
		})
	}
}
