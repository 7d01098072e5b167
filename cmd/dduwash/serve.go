package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/micahco/dduwash/internal/config"
	"github.com/micahco/dduwash/internal/endpoint"
	"github.com/micahco/dduwash/internal/journal"
	"github.com/micahco/dduwash/internal/meta"
	"github.com/micahco/dduwash/internal/page"
	"github.com/micahco/dduwash/internal/schedule"
	"github.com/micahco/dduwash/internal/store"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
)

type ServeCommand struct {
	OutStream io.Writer
	ErrStream io.Writer

	// Listener is used instead of listening on the port if not nil.
	Listener net.Listener
}

const ServeHelp = `dduwash serve -- Serve the status page

Usage: dduwash serve [OPTIONS...]

Endpoints:
  /             The status page. Use ?lang=es for Spanish.
  /status.json  The latest status list, in the same format as the API.
  /healthz      HEALTHY or FAILURE with recent errors.
  /img/*.svg    The status icons.
  /mcp          MCP server with query_bays tool.

Options:
  -p, --port      HTTP listen port. (default 9000)
  -r, --refresh   Refresh schedule; an interval, a cron spec or "@once". (default "1m")
      --max-age   Age of the status to be treated as outdated. 0 disables. (default 12h)
      --page      Page to render. (default built-in page)

      --config    Path to YAML config file.
      --origin    Base URL of the status API for a relative endpoint.
      --endpoint  Endpoint of the status API. (default "/api")
      --jq        jq query to reshape the API response.
      --labels    Label table, "localized" or "plain". (default "localized")

  -h, --help      Show this help message and exit.
`

func (cmd *ServeCommand) Run(args []string) int {
	flags := pflag.NewFlagSet("dduwash serve", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var source sourceFlags
	source.Register(flags, true)

	port := flags.IntP("port", "p", 9000, "HTTP listen port")
	refresh := flags.StringP("refresh", "r", "1m", "Refresh schedule")
	maxAge := flags.Duration("max-age", store.DefaultMaxAge, "Age of the status to be treated as outdated")
	help := flags.BoolP("help", "h", false, "Show this message and exit")

	if err := flags.Parse(args[2:]); err != nil {
		return usageError(cmd.ErrStream, args, err)
	}

	if *help {
		io.WriteString(cmd.OutStream, ServeHelp)
		return 0
	}

	if flags.NArg() > 0 {
		return usageError(cmd.ErrStream, args, fmt.Errorf("unexpected argument: %s", flags.Arg(0)))
	}

	cfg, err := source.Load(flags)
	if err != nil {
		return usageError(cmd.ErrStream, args, err)
	}
	if flags.Changed("port") {
		cfg.Server.Port = *port
	}
	if flags.Changed("refresh") {
		cfg.Server.Refresh = *refresh
	}
	if flags.Changed("max-age") {
		cfg.Server.MaxAge = *maxAge
	}
	if err := cfg.Validate(); err != nil {
		return usageError(cmd.ErrStream, args, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.RunServer(ctx, cfg)
}

// RunServer serves until ctx is done.
func (cmd *ServeCommand) RunServer(ctx context.Context, cfg config.Config) (exitCode int) {
	sched, err := cfg.Schedule()
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
		return 2
	}

	client, err := cfg.Client()
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
		return 2
	}

	doc, err := page.Load(cfg.Page)
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: failed to load page: %s\n", err)
		return 1
	}

	logger := newLogger(cmd.OutStream)
	l := logger.WithTarget("dduwash:server")

	s := store.New(client, cfg.Server.MaxAge, logger)

	listener := cmd.Listener
	if listener == nil {
		listener, err = net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port))
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: failed to listen: %s\n", err)
			return 1
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scheduler := cron.New()
	wg := &sync.WaitGroup{}

	job := s.Job(ctx)
	if sched.RunOnStart() {
		wg.Add(1)
		go func() {
			job.Run()
			wg.Done()
		}()
	}
	scheduler.Schedule(sched, job)

	scheduler.Start()
	defer scheduler.Stop()

	reportStart(l, listener.Addr().String(), cfg, sched)

	srv := &http.Server{
		Handler:           endpoint.New(s, doc, cfg.Table(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(2)
	go func() {
		<-ctx.Done()

		go func() {
			<-scheduler.Stop().Done()
			wg.Done()
		}()

		if err := srv.Shutdown(context.Background()); err != nil {
			l.Failure(err.Error(), nil)
		}
		wg.Done()
	}()

	if err := srv.Serve(listener); err != http.ErrServerClosed {
		l.Failure(err.Error(), nil)
		exitCode = 1
	}
	cancel()

	wg.Wait()

	l.Aborted("stop dduwash server", nil)

	return exitCode
}

func reportStart(l journal.Logger, addr string, cfg config.Config, sched schedule.Schedule) {
	api := cfg.API.Endpoint
	if u, err := cfg.Client(); err == nil {
		api = u.URL.String()
	}

	l.Healthy("start dduwash server", map[string]interface{}{
		"url":     "http://" + addr,
		"api":     api,
		"refresh": sched.String(),
		"max_age": cfg.Server.MaxAge.String(),
		"labels":  cfg.Labels,
		"version": meta.VersionString(),
	})
}
