package mcp

import (
	"github.com/stormlightlabs/doctrail/internal/catalog"
	"github.com/stormlightlabs/doctrail/internal/query"
	"github.com/stormlightlabs/doctrail/internal/scan"
)

// ScanDocsInput defines the input schema for the scan_docs tool.
type ScanDocsInput struct{}

// ScanDocsOutput defines the output schema for the scan_docs tool.
type ScanDocsOutput struct {
	Summary scan.Summary `json:"summary"`
}

// QueryDocsInput defines the input schema for the query_docs tool.
type QueryDocsInput struct {
	Query      string `json:"query" jsonschema:"Free-form question to search the docs tree for"`
	TopK       int    `json:"topk,omitempty" jsonschema:"Maximum number of candidates to return"`
	WithAssets bool   `json:"with_assets,omitempty" jsonschema:"Include images owned by evidence sections"`
}

// QueryDocsOutput defines the output schema for the query_docs tool.
type QueryDocsOutput struct {
	Result *query.Result `json:"result"`
}

// ListSectionAssetsInput defines the input schema for the
// list_section_assets tool.
type ListSectionAssetsInput struct {
	SectionID int64 `json:"section_id" jsonschema:"Section id from a previous query_docs result"`
}

// ListSectionAssetsOutput defines the output schema for the
// list_section_assets tool.
type ListSectionAssetsOutput struct {
	Assets []catalog.AssetRow `json:"assets"`
	Total  int                `json:"total"`
}
