package docparse

import (
	"regexp"
	"strings"
)

var imageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// Asset is an embedded image-style reference with its alt text and the raw
// relative target as written in the document.
type Asset struct {
	Alt     string
	RelPath string
	Line    int
}

// ExtractAssets finds every markdown image reference per line; multiple
// references on one line are all captured.
func ExtractAssets(lines []string) []Asset {
	var assets []Asset
	for idx, line := range lines {
		for _, m := range imageRe.FindAllStringSubmatch(line, -1) {
			assets = append(assets, Asset{
				Alt:     strings.TrimSpace(m[1]),
				RelPath: strings.TrimSpace(m[2]),
				Line:    idx + 1,
			})
		}
	}
	return assets
}
