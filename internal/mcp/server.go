// Package mcp provides the query_bays tool for MCP clients.
package mcp

import (
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/meta"
	"github.com/micahco/dduwash/lib-bay"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const instructions = "dduwash reports whether each wash bay is empty, occupied or under maintenance. Use the query_bays tool with a jq query to pick the bays you need."

// NewServer creates an MCP server that reads the status list from f.
func NewServer(f bay.Fetcher, table descriptor.Table) *mcp.Server {
	impl := &mcp.Implementation{
		Name:    meta.Name,
		Version: meta.Version,
		Title:   "Wash bay status",
	}

	server := mcp.NewServer(impl, &mcp.ServerOptions{
		Instructions: instructions,
	})

	AddTools(server, f, table)

	return server
}
