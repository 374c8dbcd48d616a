package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stormlightlabs/doctrail/internal/catalog"
	"github.com/stormlightlabs/doctrail/internal/config"
	"github.com/stormlightlabs/doctrail/internal/query"
	"github.com/stormlightlabs/doctrail/internal/ripgrep"
	"github.com/stormlightlabs/doctrail/internal/scan"
)

type Handlers struct {
	store   *catalog.Store
	scanner *scan.Scanner
	engine  *query.Engine
}

func NewHandlers(store *catalog.Store, cfg *config.Config) *Handlers {
	return &Handlers{
		store:   store,
		scanner: scan.New(store, cfg, nil),
		engine:  query.New(store, cfg, ripgrep.NewTool(), nil),
	}
}

func (h *Handlers) ScanDocsHandler(ctx context.Context, req *mcp.CallToolRequest, input ScanDocsInput) (*mcp.CallToolResult, any, error) {
	summary, err := h.scanner.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, ScanDocsOutput{Summary: *summary}, nil
}

func (h *Handlers) QueryDocsHandler(ctx context.Context, req *mcp.CallToolRequest, input QueryDocsInput) (*mcp.CallToolResult, any, error) {
	result, err := h.engine.Run(ctx, input.Query, query.Options{
		TopK:       input.TopK,
		WithAssets: input.WithAssets,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, QueryDocsOutput{Result: result}, nil
}

func (h *Handlers) ListSectionAssetsHandler(ctx context.Context, req *mcp.CallToolRequest, input ListSectionAssetsInput) (*mcp.CallToolResult, any, error) {
	assets, err := h.store.AssetsForSection(ctx, catalog.SectionID(input.SectionID))
	if err != nil {
		return nil, nil, err
	}
	return nil, ListSectionAssetsOutput{Assets: assets, Total: len(assets)}, nil
}
