// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server wires the tool registry into an MCP server instance. No
// business logic lives here, only registration.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/scholar-tools/internal/tools"
)

// Name is the server name announced during MCP initialization.
const Name = "scholar-tools"

const instructions = "Tools for searching academic literature through the ai4scholar.net graph. " +
	"Use paper_search or paper_title_search to find papers, then paper_detail, paper_citations, " +
	"paper_references or paper_recommendations with the returned Paper ID. " +
	"Use author_search to find an Author ID for author_detail and author_papers."

// New creates the MCP server with every tool in reg registered.
func New(reg *tools.Registry, version string) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	for _, t := range reg.Tools() {
		s.AddTool(t.Definition(), reg.Handler(t))
	}
	return s
}
