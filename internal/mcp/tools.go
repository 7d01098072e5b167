package mcp

import (
	"context"
	"fmt"

	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/export"
	"github.com/micahco/dduwash/internal/jq"
	"github.com/micahco/dduwash/lib-bay"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BaysInput is the input for query_bays tool.
type BaysInput struct {
	JQ   string `json:"jq,omitempty" jsonschema:"A jq query string to filter and/or aggregate bays. Query receives an array. Each object is like '{\"bay_id\": \"...\", \"status\": 0, \"status_name\": \"EMPTY\", \"label\": \"Empty\", \"updated_at\": \"{RFC 3339}\", \"timestamp\": {unix seconds}}'. status is 0 for EMPTY, 1 for OCCUPIED and 2 for MAINTENANCE. You can use 'status_name' filter to convert a status code into its name. For example, 'map(select(.status_name == \"EMPTY\")) | length' to count empty bays."`
	Lang string `json:"lang,omitempty" jsonschema:"The language of label, 'en' or 'es'. If omitted, 'en' is used."`
}

// FetchBaysByJQ fetches the status list and applies jq query.
func FetchBaysByJQ(ctx context.Context, f bay.Fetcher, table descriptor.Table, input BaysInput) (jq.Output, error) {
	q, err := jq.Parse(input.JQ)
	if err != nil {
		return jq.Output{}, fmt.Errorf("failed to parse jq query: %w", err)
	}

	results, err := f.Fetch(ctx)
	if err != nil {
		return jq.Output{}, fmt.Errorf("failed to fetch status: %w", err)
	}

	rows := export.Rows(results, table, descriptor.MatchLanguage(input.Lang))

	return q.Run(ctx, export.Maps(rows))
}

// AddTools adds query_bays tool to the MCP server.
func AddTools(server *mcp.Server, f bay.Fetcher, table descriptor.Table) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_bays",
		Title:       "Query bays",
		Description: "Fetch the latest status of each wash bay.",
		Annotations: &mcp.ToolAnnotations{
			IdempotentHint: true,
			ReadOnlyHint:   true,
		},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input BaysInput) (*mcp.CallToolResult, jq.Output, error) {
		output, err := FetchBaysByJQ(ctx, f, table, input)
		return nil, output, err
	})
}
