package docparse

import (
	"reflect"
	"testing"
)

func TestExtractSymbolsDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []Symbol
	}{
		{
			name:  "class with export",
			lines: []string{"export class OrderService {"},
			expected: []Symbol{
				{Name: "OrderService", Kind: KindClass, Line: 1},
			},
		},
		{
			name:  "interface",
			lines: []string{"interface Shape {"},
			expected: []Symbol{
				{Name: "Shape", Kind: KindInterface, Line: 1},
			},
		},
		{
			name:  "enum and function",
			lines: []string{"enum Color {", "export function render() {"},
			expected: []Symbol{
				{Name: "Color", Kind: KindEnum, Line: 1},
				{Name: "render", Kind: KindFunction, Line: 2},
			},
		},
		{
			name:  "plain struct",
			lines: []string{"struct Point {"},
			expected: []Symbol{
				{Name: "Point", Kind: KindStruct, Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSymbols(tt.lines)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractSymbols = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractSymbolsComponentUpgrade(t *testing.T) {
	lines := []string{
		"@Component",
		"struct Button {",
		"struct Plain {",
	}

	got := ExtractSymbols(lines)
	want := []Symbol{
		{Name: "Button", Kind: KindComponent, Line: 2},
		{Name: "Plain", Kind: KindStruct, Line: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSymbols = %v, want %v", got, want)
	}
}

func TestExtractSymbolsComponentClearedByOtherDecl(t *testing.T) {
	lines := []string{
		"@Component",
		"class Widget {",
		"struct Box {",
	}

	got := ExtractSymbols(lines)
	want := []Symbol{
		{Name: "Widget", Kind: KindClass, Line: 2},
		{Name: "Box", Kind: KindStruct, Line: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSymbols = %v, want %v", got, want)
	}
}

func TestExtractSymbolsCallLike(t *testing.T) {
	lines := []string{"result = computeTotal(items) + fn(x) + if (cond)"}

	got := ExtractSymbols(lines)
	want := []Symbol{
		{Name: "computeTotal", Kind: KindCall, Line: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSymbols = %v, want %v", got, want)
	}
}

func TestExtractSymbolsCallStopwords(t *testing.T) {
	lines := []string{"while (true) { return map(filter(reduce(xs))) }"}

	if got := ExtractSymbols(lines); len(got) != 0 {
		t.Errorf("expected no symbols, got %v", got)
	}
}

func TestExtractSymbolsMultipleCallsPerLine(t *testing.T) {
	lines := []string{"openFile(path); closeFile(handle)"}

	got := ExtractSymbols(lines)
	want := []Symbol{
		{Name: "openFile", Kind: KindCall, Line: 1},
		{Name: "closeFile", Kind: KindCall, Line: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSymbols = %v, want %v", got, want)
	}
}
