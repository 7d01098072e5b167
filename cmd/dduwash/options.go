package main

import (
	"fmt"
	"io"
	"os"

	"github.com/micahco/dduwash/internal/config"
	"github.com/micahco/dduwash/internal/journal"
	"github.com/spf13/pflag"
)

// sourceFlags are the options to find the status API, shared by all commands.
type sourceFlags struct {
	ConfigPath string
	Origin     string
	Endpoint   string
	JQ         string
	Labels     string
	Page       string
}

func (f *sourceFlags) Register(flags *pflag.FlagSet, withPage bool) {
	flags.StringVar(&f.ConfigPath, "config", "", "Path to YAML config file")
	flags.StringVar(&f.Origin, "origin", "", "Base URL of the status API")
	flags.StringVar(&f.Endpoint, "endpoint", "/api", "Endpoint of the status API")
	flags.StringVar(&f.JQ, "jq", "", "jq query to reshape the API response")
	flags.StringVar(&f.Labels, "labels", config.LabelsLocalized, `Label table, "localized" or "plain"`)
	if withPage {
		flags.StringVar(&f.Page, "page", "", "Path to the page to render (default built-in page)")
	}
}

// Load reads the config file and overrides it with the flags that set explicitly.
func (f *sourceFlags) Load(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(f.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("origin") {
		cfg.API.Origin = f.Origin
	}
	if flags.Changed("endpoint") {
		cfg.API.Endpoint = f.Endpoint
	}
	if flags.Changed("jq") {
		cfg.API.JQ = f.JQ
	}
	if flags.Changed("labels") {
		cfg.Labels = f.Labels
	}
	if flags.Changed("page") {
		cfg.Page = f.Page
	}

	return cfg, nil
}

func usageError(w io.Writer, args []string, err error) int {
	fmt.Fprintln(w, err)
	fmt.Fprintf(w, "\nPlease see `%s %s -h` for more information.\n", args[0], args[1])
	return 2
}

// newLogger makes the console journal for w.
// A terminal gets human readable lines, anything else gets JSON lines.
func newLogger(w io.Writer) journal.Logger {
	if f, ok := w.(*os.File); ok {
		return journal.New(w, journal.FormatFor(f))
	}
	return journal.New(w, journal.FormatJSON)
}
