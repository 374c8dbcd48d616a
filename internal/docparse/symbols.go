package docparse

import (
	"regexp"
	"strings"
)

// Symbol kinds produced by ExtractSymbols.
const (
	KindClass     = "class"
	KindInterface = "interface"
	KindEnum      = "enum"
	KindFunction  = "function"
	KindStruct    = "struct"
	KindComponent = "component"
	KindCall      = "call"
)

// Symbol is a named, line-located construct found by line-level pattern
// matching.
type Symbol struct {
	Name string
	Kind string
	Line int
}

var (
	classRe     = regexp.MustCompile(`^\s*(?:export\s+)?class\s+([A-Za-z_]\w*)\b`)
	interfaceRe = regexp.MustCompile(`^\s*(?:export\s+)?interface\s+([A-Za-z_]\w*)\b`)
	enumRe      = regexp.MustCompile(`^\s*(?:export\s+)?enum\s+([A-Za-z_]\w*)\b`)
	functionRe  = regexp.MustCompile(`^\s*(?:export\s+)?function\s+([A-Za-z_]\w*)\b`)
	structRe    = regexp.MustCompile(`^\s*struct\s+([A-Za-z_]\w*)\b`)
	componentRe = regexp.MustCompile(`^\s*@Component\b`)
	callLikeRe  = regexp.MustCompile(`\b([A-Za-z_]\w*)\s*\(`)
)

var callLikeStopwords = map[string]struct{}{
	"if":        {},
	"for":       {},
	"while":     {},
	"switch":    {},
	"return":    {},
	"new":       {},
	"function":  {},
	"class":     {},
	"interface": {},
	"enum":      {},
	"struct":    {},
	"catch":     {},
	"map":       {},
	"filter":    {},
	"reduce":    {},
}

type declPattern struct {
	re   *regexp.Regexp
	kind string
}

var declPatterns = []declPattern{
	{classRe, KindClass},
	{interfaceRe, KindInterface},
	{enumRe, KindEnum},
	{functionRe, KindFunction},
}

// ExtractSymbols recognizes declarations (class/interface/enum/function/
// struct, optional export prefix) and generic call-like references. An
// @Component annotation on the preceding line upgrades the next struct
// declaration to kind component; the marker is cleared when any declaration
// matches.
func ExtractSymbols(lines []string) []Symbol {
	var symbols []Symbol
	pendingComponent := false

	for idx, line := range lines {
		lineNo := idx + 1

		if componentRe.MatchString(line) {
			pendingComponent = true
			continue
		}

		matched := false
		for _, p := range declPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			symbols = append(symbols, Symbol{Name: m[1], Kind: p.kind, Line: lineNo})
			pendingComponent = false
			matched = true
			break
		}
		if matched {
			continue
		}

		if m := structRe.FindStringSubmatch(line); m != nil {
			kind := KindStruct
			if pendingComponent {
				kind = KindComponent
			}
			symbols = append(symbols, Symbol{Name: m[1], Kind: kind, Line: lineNo})
			pendingComponent = false
			continue
		}

		if !strings.Contains(line, "(") {
			continue
		}
		for _, m := range callLikeRe.FindAllStringSubmatch(line, -1) {
			name := m[1]
			if _, stop := callLikeStopwords[name]; stop {
				continue
			}
			if len(name) < 3 {
				continue
			}
			symbols = append(symbols, Symbol{Name: name, Kind: KindCall, Line: lineNo})
		}
	}

	return symbols
}
