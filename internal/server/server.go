// Package server wires the pieces into an MCP server instance: registry →
// generated tools → dispatcher → store. No business logic lives here.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/promptai/ims-mcp/internal/config"
	"github.com/promptai/ims-mcp/internal/dispatch"
	"github.com/promptai/ims-mcp/internal/schema"
	"github.com/promptai/ims-mcp/internal/store"
	"github.com/promptai/ims-mcp/internal/toolgen"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every generated tool registered. The tool
// catalogue is built once here and never changes afterwards.
//
// The returned cleanup function closes the database connection and must be
// called on shutdown (typically via defer). It is always non-nil.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	if err := schema.Check(schema.Tables); err != nil {
		return nil, noop, fmt.Errorf("checking registry: %w", err)
	}

	st, err := store.OpenSQLite(cfg.DBPath(), schema.Tables)
	if err != nil {
		return nil, noop, fmt.Errorf("opening store: %w", err)
	}
	cleanup := func() { st.Close() }

	tools, err := toolgen.Generate(schema.Tables)
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("generating tools: %w", err)
	}

	s := server.NewMCPServer(
		"promptai-ims",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	d := dispatch.New(st, tools)
	for _, gt := range tools {
		s.AddTool(gt.Tool, d.Handler(gt.Tool.Name))
	}

	return s, cleanup, nil
}

// noop is the default cleanup when initialization fails early.
func noop() {}
