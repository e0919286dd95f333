// ims-mcp: schema-driven CRUD MCP server for the PromptAI IMS.
//
// Every tool it advertises is generated from the table registry in
// internal/schema — create/list/update/delete for each table, backed by a
// local SQLite database.
//
// Usage:
//
//	ims-mcp serve    # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/promptai/ims-mcp/internal/config"
	imsserver "github.com/promptai/ims-mcp/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("ims-mcp v%s\n", imsserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, cleanup, err := imsserver.New(config.Default())
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Diagnostics go to stderr — stdout belongs to the MCP transport.
	fmt.Fprintln(os.Stderr, "PromptAI IMS MCP server running on stdio")

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ims-mcp v%s — PromptAI IMS MCP Server

Usage:
  ims-mcp serve    Start the MCP server (stdio transport)

Environment:
  %s    Directory for the SQLite database (default ~/.ims-mcp)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "ims": {
        "command": "ims-mcp",
        "args": ["serve"]
      }
    }
  }
`, imsserver.Version, config.EnvDataDir)
}
