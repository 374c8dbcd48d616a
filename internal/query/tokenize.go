package query

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenRe captures identifier-like runs and short CJK runs; everything else
// (punctuation, whitespace) separates tokens.
var tokenRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*|[\x{4e00}-\x{9fff}]{1,4}`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "for": {}, "with": {}, "from": {},
	"into": {}, "when": {}, "what": {}, "how": {}, "why": {}, "where": {},
	"which": {}, "this": {}, "that": {},
	"这些": {}, "那些": {}, "怎么": {}, "如何": {}, "请问": {}, "一个": {},
	"有没有": {}, "官方": {}, "推荐": {}, "候选": {}, "列表": {}, "给出": {},
	"筛选": {}, "附": {}, "来源": {}, "配图": {},
}

// Tokenize splits a free-form question into search keywords: stopwords and
// single-rune tokens are dropped, duplicates collapse to their first
// occurrence, and order is otherwise preserved.
func Tokenize(query string) []string {
	var keywords []string
	seen := make(map[string]struct{})
	for _, tok := range tokenRe.FindAllString(query, -1) {
		if _, stop := stopwords[strings.ToLower(tok)]; stop {
			continue
		}
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}
