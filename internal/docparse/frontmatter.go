package docparse

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// FrontMatter holds the YAML front matter fields doctrail cares about.
type FrontMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// ParseFrontMatter extracts a YAML front matter block delimited by `---`
// lines at the top of the document. Returns the zero value when no block is
// present or it fails to parse.
func ParseFrontMatter(lines []string) FrontMatter {
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return FrontMatter{}
	}

	endIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			endIdx = i
			break
		}
	}
	if endIdx <= 0 {
		return FrontMatter{}
	}

	var fm FrontMatter
	block := strings.Join(lines[1:endIdx], "\n")
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return FrontMatter{}
	}
	return fm
}
