package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/micahco/dduwash/internal/meta"
)

//go:embed help.txt
var helpText string

// PrintUsage writes the help of dduwash.
func PrintUsage(w io.Writer, detail bool) {
	tmpl := template.Must(template.New("help.txt").Parse(helpText))
	tmpl.Execute(w, map[string]interface{}{
		"Version": meta.VersionString(),
		"Short":   !detail,
	})
}

// Main dispatches args to a subcommand, and returns the exit code.
// Without a subcommand name, args are handled by render.
func Main(args []string, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		switch args[1] {
		case "-h", "--help", "help":
			PrintUsage(stdout, true)
			return 0
		case "-v", "--version", "version":
			fmt.Fprintf(stdout, "dduwash version %s\n", meta.VersionString())
			return 0
		case "render":
			return (&RenderCommand{OutStream: stdout, ErrStream: stderr}).Run(args)
		case "serve", "server":
			return (&ServeCommand{OutStream: stdout, ErrStream: stderr}).Run(args)
		case "export":
			return (&ExportCommand{OutStream: stdout, ErrStream: stderr}).Run(args)
		case "mcp":
			return (&MCPCommand{InStream: os.Stdin, OutStream: stdout, ErrStream: stderr}).Run(args)
		}
	}

	// Insert the command name so every command sees args[2:] as its options.
	rargs := append([]string{args[0], "render"}, args[1:]...)
	return (&RenderCommand{OutStream: stdout, ErrStream: stderr}).Run(rargs)
}

func main() {
	os.Exit(Main(os.Args, os.Stdout, os.Stderr))
}
