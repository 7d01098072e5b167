package endpoint_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/micahco/dduwash/internal/jq"
	"github.com/micahco/dduwash/internal/mcp"
	"github.com/micahco/dduwash/internal/testutil"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestMCPHandler_QueryBays(t *testing.T) {
	srv := startServer(t, newStore(t, &testutil.CountingFetcher{Results: testutil.DummyResults}, 0, true))

	tests := []struct {
		Name   string
		Args   mcp.BaysInput
		Expect jq.Output
	}{
		{"count", mcp.BaysInput{JQ: `length`}, jq.Output{Result: float64(6)}},
		{"occupied", mcp.BaysInput{JQ: `map(select(.status_name == "OCCUPIED") | .bay_id)`}, jq.Output{Result: []any{"Washbay 2", "Washbay 5"}}},
		{"spanish", mcp.BaysInput{JQ: `.[0].label`, Lang: "es"}, jq.Output{Result: "Vacío"}},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			client := mcpsdk.NewClient(&mcpsdk.Implementation{
				Name:    "test-client",
				Version: "none",
			}, nil)
			sess, err := client.Connect(t.Context(), &mcpsdk.StreamableClientTransport{
				Endpoint: srv.URL + "/mcp",
			}, nil)
			if err != nil {
				t.Fatalf("failed to connect to MCP server: %v", err)
			}
			defer sess.Close()

			result, err := sess.CallTool(t.Context(), &mcpsdk.CallToolParams{
				Name:      "query_bays",
				Arguments: tt.Args,
			})
			if err != nil {
				t.Fatalf("failed to call tool: %v", err)
			}
			if result.IsError {
				t.Fatalf("unexpected error result: %#v", result.Content)
			}

			text, ok := result.Content[0].(*mcpsdk.TextContent)
			if !ok {
				t.Fatalf("expected TextContent, got %#v", result.Content[0])
			}

			var output jq.Output
			if err := json.Unmarshal([]byte(text.Text), &output); err != nil {
				t.Fatalf("failed to unmarshal result: %v", err)
			}
			if diff := cmp.Diff(tt.Expect, output); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
