package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	mcputil "github.com/micahco/dduwash/internal/mcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"
)

// MCPCommand represents the MCP subcommand.
type MCPCommand struct {
	InStream  io.Reader
	OutStream io.Writer
	ErrStream io.Writer
}

const MCPHelp = `dduwash mcp -- Start MCP server on stdio

Usage: dduwash mcp [OPTIONS...]

The server has query_bays tool, which fetches the status list on each call.

Options:
      --config    Path to YAML config file.
      --origin    Base URL of the status API for a relative endpoint.
      --endpoint  Endpoint of the status API. (default "/api")
      --jq        jq query to reshape the API response.
      --labels    Label table, "localized" or "plain". (default "localized")

  -h, --help      Show this help message and exit.
`

func (cmd *MCPCommand) Run(args []string) int {
	flags := pflag.NewFlagSet("dduwash mcp", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var source sourceFlags
	source.Register(flags, false)

	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[2:]); err != nil {
		return usageError(cmd.ErrStream, args, err)
	}

	if *help {
		io.WriteString(cmd.OutStream, MCPHelp)
		return 0
	}

	cfg, err := source.Load(flags)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return usageError(cmd.ErrStream, args, err)
	}

	client, err := cfg.Client()
	if err != nil {
		return usageError(cmd.ErrStream, args, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := mcputil.NewServer(client, cfg.Table())

	var transport mcp.Transport = &mcp.StdioTransport{}
	if cmd.InStream != os.Stdin || cmd.OutStream != os.Stdout {
		transport = &mcp.IOTransport{
			Reader: io.NopCloser(cmd.InStream),
			Writer: nopWriteCloser{cmd.OutStream},
		}
	}

	if err := server.Run(ctx, transport); err != nil && ctx.Err() == nil {
		fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
		return 1
	}

	return 0
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
