package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/micahco/dduwash/internal/board"
	"github.com/micahco/dduwash/internal/page"
	"github.com/spf13/pflag"
)

type RenderCommand struct {
	OutStream io.Writer
	ErrStream io.Writer
}

const RenderHelp = `dduwash render -- Render the status page once

Usage: dduwash render [OPTIONS...]

The rendered page is printed even if rendering failed, in its loading state.
The exit code is 1 in that case.

Options:
  -o, --output    Output file. (default stdout)
      --page      Page to render. (default built-in page)
      --lang      Language of the page, "en" or "es". (default the lang attribute of the page)

      --config    Path to YAML config file.
      --origin    Base URL of the status API for a relative endpoint.
      --endpoint  Endpoint of the status API. (default "/api")
      --jq        jq query to reshape the API response.
      --labels    Label table, "localized" or "plain". (default "localized")

  -h, --help      Show this help message and exit.
`

func (cmd *RenderCommand) Run(args []string) int {
	flags := pflag.NewFlagSet("dduwash render", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var source sourceFlags
	source.Register(flags, true)

	outputPath := flags.StringP("output", "o", "", "Output file")
	lang := flags.String("lang", "", "Language of the page")
	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[2:]); err != nil {
		return usageError(cmd.ErrStream, args, err)
	}

	if *help {
		io.WriteString(cmd.OutStream, RenderHelp)
		return 0
	}

	if flags.NArg() > 0 {
		return usageError(cmd.ErrStream, args, fmt.Errorf("unexpected argument: %s", flags.Arg(0)))
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

	doc, err := page.Load(cfg.Page)
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: failed to load page: %s\n", err)
		return 1
	}
	if *lang != "" {
		doc.SetLang(*lang)
	}

	output := cmd.OutStream
	if *outputPath != "" && *outputPath != "-" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: failed to open output file: %s\n", err)
			return 1
		}
		defer f.Close()
		output = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := board.New(client, cfg.Table(), newLogger(cmd.ErrStream))
	o := b.Render(ctx, board.HTML(doc))

	if err := doc.Render(output); err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: failed to write page: %s\n", err)
		return 1
	}

	if !o.OK() {
		return 1
	}
	return 0
}
