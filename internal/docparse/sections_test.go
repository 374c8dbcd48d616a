package docparse

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func makeLines(n int, headings map[int]string) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "text line"
	}
	for lineNo, h := range headings {
		lines[lineNo-1] = h
	}
	return lines
}

func TestParseSectionsBoundariesAndTitles(t *testing.T) {
	lines := makeLines(20, map[int]string{
		1:  "# A",
		5:  "## B",
		10: "# C",
		12: "### D",
	})

	sections := ParseSections("doc.md", lines)
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	tests := []struct {
		name       string
		idx        int
		h1, h2, h3 string
		start, end int
	}{
		{"A", 0, "A", "", "", 1, 9},
		{"B", 1, "A", "B", "", 5, 9},
		{"C", 2, "C", "", "", 10, 20},
		{"D", 3, "C", "", "D", 12, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := sections[tt.idx]
			if sec.H1 != tt.h1 || sec.H2 != tt.h2 || sec.H3 != tt.h3 {
				t.Errorf("titles = (%q, %q, %q), want (%q, %q, %q)", sec.H1, sec.H2, sec.H3, tt.h1, tt.h2, tt.h3)
			}
			if sec.StartLine != tt.start || sec.EndLine != tt.end {
				t.Errorf("range = [%d,%d], want [%d,%d]", sec.StartLine, sec.EndLine, tt.start, tt.end)
			}
		})
	}
}

func TestParseSectionsNoHeadings(t *testing.T) {
	lines := []string{"just", "plain", "text"}
	if sections := ParseSections("doc.md", lines); sections != nil {
		t.Errorf("expected nil sections, got %v", sections)
	}

	whole := WholeFileSection("doc.md", lines)
	if whole.StartLine != 1 || whole.EndLine != 3 {
		t.Errorf("whole-file section = [%d,%d], want [1,3]", whole.StartLine, whole.EndLine)
	}
}

func TestParseSectionsDeepHeadingIgnored(t *testing.T) {
	lines := []string{"# Top", "#### too deep", "body"}
	sections := ParseSections("doc.md", lines)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].EndLine != 3 {
		t.Errorf("end line = %d, want 3", sections[0].EndLine)
	}
}

func TestSectionText(t *testing.T) {
	lines := []string{"one", "two", "three", "four"}

	tests := []struct {
		name       string
		start, end int
		expected   string
	}{
		{"middle", 2, 3, "two\nthree"},
		{"whole", 1, 4, "one\ntwo\nthree\nfour"},
		{"end clamped", 3, 99, "three\nfour"},
		{"empty range", 5, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionText(lines, tt.start, tt.end); got != tt.expected {
				t.Errorf("SectionText(%d,%d) = %q, want %q", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestExtractSummary(t *testing.T) {
	lines := []string{
		"# Title",
		"",
		"First sentence.",
		"Second sentence.",
		"",
		"After the break.",
	}

	got := ExtractSummary(lines, 1, len(lines))
	want := "First sentence. Second sentence."
	if got != want {
		t.Errorf("ExtractSummary = %q, want %q", got, want)
	}
}

func TestExtractSummarySkipsNestedHeadings(t *testing.T) {
	lines := []string{
		"# Title",
		"## Sub",
		"Body text.",
	}

	if got := ExtractSummary(lines, 1, len(lines)); got != "Body text." {
		t.Errorf("ExtractSummary = %q, want %q", got, "Body text.")
	}
}

func TestExtractSummaryCaps(t *testing.T) {
	long := strings.Repeat("x", 250)
	lines := []string{"# T", long, long, long}

	got := ExtractSummary(lines, 1, len(lines))
	if len(got) != 400 {
		t.Errorf("summary length = %d, want 400", len(got))
	}
}

func TestExtractSummaryCapsRunes(t *testing.T) {
	long := strings.Repeat("订", 500)
	lines := []string{"# T", long}

	got := ExtractSummary(lines, 1, len(lines))
	if !utf8.ValidString(got) {
		t.Fatal("summary is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 400 {
		t.Errorf("summary rune count = %d, want 400", n)
	}
}
