// Package docparse turns a document's line sequence into a section
// hierarchy plus extracted symbols and embedded assets. All functions are
// pure over the lines given; reading files is the caller's concern except
// for the ReadLines convenience.
package docparse

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stormlightlabs/doctrail/internal/shared"
)

var headingRe = regexp.MustCompile(`^(#{1,3})\s+(.+?)\s*$`)

// Section is a contiguous line range bounded by heading structure. Start and
// end lines are 1-based and inclusive. Empty titles mean no heading at that
// level governs the section.
type Section struct {
	Path      string
	H1        string
	H2        string
	H3        string
	StartLine int
	EndLine   int
}

type heading struct {
	line  int
	level int
	title string
}

// ParseSections scans for markdown headings of levels 1-3. Each heading
// opens a section ending at the line before the next heading of
// equal-or-shallower level, or end of file. Titles are resolved in a single
// forward pass keeping one active title per level; a heading resets its own
// level and every deeper one. A file without headings yields no sections;
// callers substitute a whole-file section.
func ParseSections(path string, lines []string) []Section {
	var headings []heading
	for idx, line := range lines {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headings = append(headings, heading{line: idx + 1, level: len(m[1]), title: strings.TrimSpace(m[2])})
	}

	if len(headings) == 0 {
		return nil
	}

	var active [3]string
	sections := make([]Section, 0, len(headings))
	for i, h := range headings {
		active[h.level-1] = h.title
		for d := h.level; d < 3; d++ {
			active[d] = ""
		}

		endLine := len(lines)
		for _, next := range headings[i+1:] {
			if next.level <= h.level {
				endLine = next.line - 1
				break
			}
		}

		sections = append(sections, Section{
			Path:      path,
			H1:        active[0],
			H2:        active[1],
			H3:        active[2],
			StartLine: h.line,
			EndLine:   endLine,
		})
	}

	return sections
}

// WholeFileSection is the fallback for documents without headings.
func WholeFileSection(path string, lines []string) Section {
	return Section{Path: path, StartLine: 1, EndLine: len(lines)}
}

// SectionText slices the inclusive [start,end] line range into one string.
func SectionText(lines []string, startLine, endLine int) string {
	start := max(startLine-1, 0)
	end := min(endLine, len(lines))
	if start >= end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}

// ExtractSummary concatenates trimmed non-blank lines starting just after
// startLine, skipping heading lines, until a blank line follows content or
// 300 accumulated characters are reached. The result is capped at 400
// characters.
func ExtractSummary(lines []string, startLine, endLine int) string {
	var content []string
	total := 0
	inPara := false

	startIdx := min(max(startLine, 1), len(lines))
	endIdx := min(max(endLine, 1), len(lines))
	for _, line := range lines[startIdx:endIdx] {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if inPara {
				break
			}
			continue
		}
		if strings.HasPrefix(stripped, "#") {
			continue
		}
		inPara = true
		content = append(content, stripped)
		total += utf8.RuneCountInString(stripped)
		if total > 300 {
			break
		}
	}

	return shared.Clip(strings.Join(content, " "), 400)
}

// ReadLines reads a file and splits it into lines with normalized endings.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(shared.NormalizeLineEndings(string(data)), "\n"), nil
}
