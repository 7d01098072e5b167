package endpoint

import (
	"net/http"

	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/mcp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPHandler creates an HTTP handler for MCP requests.
func MCPHandler(s Store, table descriptor.Table) http.Handler {
	server := mcp.NewServer(s, table)

	return mcpsdk.NewStreamableHTTPHandler(func(req *http.Request) *mcpsdk.Server {
		return server
	}, &mcpsdk.StreamableHTTPOptions{
		Stateless:    true,
		JSONResponse: true,
	})
}
