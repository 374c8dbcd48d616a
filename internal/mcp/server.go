// Package mcp exposes the scanner and query engine to MCP clients over
// stdio or streamable HTTP.
package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stormlightlabs/doctrail/internal/catalog"
	"github.com/stormlightlabs/doctrail/internal/config"
)

// NewServer creates a new MCP server for doctrail.
func NewServer(store *catalog.Store, cfg *config.Config, version string) *mcp.Server {
	logger := slog.New(slog.NewJSONHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelInfo},
	))

	server := mcp.NewServer(
		&mcp.Implementation{Name: "doctrail", Version: version},
		&mcp.ServerOptions{Logger: logger},
	)

	handlers := NewHandlers(store, cfg)

	mcp.AddTool(server, newTool("scan_docs", "Index the configured docs tree into the catalog"),
		func(ctx context.Context, req *mcp.CallToolRequest, input ScanDocsInput) (*mcp.CallToolResult, any, error) {
			logger.Info("Tool call: scan_docs")
			return handlers.ScanDocsHandler(ctx, req, input)
		})

	mcp.AddTool(server, newTool("query_docs", "Search the docs catalog and return candidates with evidence"),
		func(ctx context.Context, req *mcp.CallToolRequest, input QueryDocsInput) (*mcp.CallToolResult, any, error) {
			logger.Info("Tool call: query_docs", "query", input.Query, "topk", input.TopK)
			return handlers.QueryDocsHandler(ctx, req, input)
		})

	mcp.AddTool(server, newTool("list_section_assets", "List images embedded in a catalog section"),
		func(ctx context.Context, req *mcp.CallToolRequest, input ListSectionAssetsInput) (*mcp.CallToolResult, any, error) {
			logger.Info("Tool call: list_section_assets", "section_id", input.SectionID)
			return handlers.ListSectionAssetsHandler(ctx, req, input)
		})

	return server
}

// RunStdio runs the server using the stdio transport.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP runs the server using the streamable HTTP transport.
func RunHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	f := func(r *http.Request) *mcp.Server { return server }
	handler := mcp.NewStreamableHTTPHandler(f, nil)

	s := &http.Server{Addr: addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()

	return s.ListenAndServe()
}

func newTool(n, d string) *mcp.Tool {
	return &mcp.Tool{Name: n, Description: d}
}
