package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/export"
	"github.com/spf13/pflag"
)

type ExportCommand struct {
	OutStream io.Writer
	ErrStream io.Writer
}

const ExportHelp = `dduwash export -- Fetch the status once and convert it

Usage: dduwash export [OPTIONS...]

Options:
  -o, --output    Output file. (default stdout)
      --lang      Language of labels, "en" or "es". (default "en")

  -c, --csv       Convert to CSV. (default format)
  -j, --json      Convert to JSON.
  -l, --ltsv      Convert to LTSV.
  -x, --xlsx      Convert to XLSX.

      --config    Path to YAML config file.
      --origin    Base URL of the status API for a relative endpoint.
      --endpoint  Endpoint of the status API. (default "/api")
      --jq        jq query to reshape the API response.
      --labels    Label table, "localized" or "plain". (default "localized")

  -h, --help      Show this help message and exit.
`

func (c ExportCommand) Run(args []string) int {
	flags := pflag.NewFlagSet("dduwash export", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var source sourceFlags
	source.Register(flags, false)

	outputPath := flags.StringP("output", "o", "", "Output file")
	lang := flags.String("lang", descriptor.DefaultLanguage, "Language of labels")

	toCsv := flags.BoolP("csv", "c", false, "Convert to CSV")
	toJson := flags.BoolP("json", "j", false, "Convert to JSON")
	toLtsv := flags.BoolP("ltsv", "l", false, "Convert to LTSV")
	toXlsx := flags.BoolP("xlsx", "x", false, "Convert to XLSX")

	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[2:]); err != nil {
		return usageError(c.ErrStream, args, err)
	}

	if *help {
		fmt.Fprint(c.OutStream, ExportHelp)
		return 0
	}

	count := 0
	for _, b := range []bool{*toCsv, *toJson, *toLtsv, *toXlsx} {
		if b {
			count++
		}
	}
	if count > 1 {
		fmt.Fprintln(c.ErrStream, "error: flags for output format can not use multiple in the same time.")
		return 2
	}

	cfg, err := source.Load(flags)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return usageError(c.ErrStream, args, err)
	}

	client, err := cfg.Client()
	if err != nil {
		return usageError(c.ErrStream, args, err)
	}

	output := c.OutStream
	if *outputPath != "" && *outputPath != "-" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(c.ErrStream, "error: failed to open output file: %s\n", err)
			return 1
		}
		defer f.Close()
		output = f
	} else if f, ok := output.(*os.File); *toXlsx && ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(c.ErrStream, "error: can not write xlsx format to terminal. please redirect or use -o option.")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := client.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: %s\n", err)
		return 1
	}

	rows := export.Rows(results, cfg.Table(), descriptor.MatchLanguage(*lang))

	switch {
	case *toJson:
		err = export.ToJSON(output, rows)
	case *toLtsv:
		err = export.ToLTSV(output, rows)
	case *toXlsx:
		err = export.ToXlsx(output, rows, time.Now())
	default:
		err = export.ToCSV(output, rows)
	}
	if err != nil {
		fmt.Fprintf(c.ErrStream, "error: failed to write: %s\n", err)
		return 1
	}
	return 0
}
