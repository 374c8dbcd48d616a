package query

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "stopwords and short tokens dropped",
			query:    "How do I use it for candidates?",
			expected: []string{"do", "use", "it", "candidates"},
		},
		{
			name:     "duplicates keep first occurrence",
			query:    "render render chart render",
			expected: []string{"render", "chart"},
		},
		{
			name:     "identifiers survive punctuation",
			query:    "OrderService.place_order() fails",
			expected: []string{"OrderService", "place_order", "fails"},
		},
		{
			name:     "stopword check is case-insensitive",
			query:    "WHERE does The parser live",
			expected: []string{"does", "parser", "live"},
		},
		{
			name:     "cjk runs kept, cjk stopwords dropped",
			query:    "如何 配置 扫描",
			expected: []string{"配置", "扫描"},
		},
		{
			name:     "empty query",
			query:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}
