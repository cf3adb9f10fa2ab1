package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/crawl"
	"github.com/gmfreire/cnesbeds/export"
	chttp "github.com/gmfreire/cnesbeds/http"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is the process configuration. Populated from the
	// environment in Run unless set beforehand (end-to-end tests).
	Config *cnesbeds.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file is optional; explicit environment always wins.
	_ = godotenv.Load()

	if m.Config == nil {
		cfg, err := cnesbeds.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("configuration: %s", cnesbeds.ErrorMessage(err))
		}
		m.Config = &cfg
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: *m.Config,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cnesbeds"),
		kong.Description("Collect CNES hospital bed-availability tables."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cnesbeds --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the collection pipeline.
	fetcher := chttp.NewFetcher(chttp.WithTimeout(m.Config.Timeout))
	policy := crawl.NewPolicy(*m.Config, logger)
	limiter := crawl.NewHostLimiter(cli.RPS)

	deps.Collector = &crawl.Collector{
		Discoverer: &crawl.Discoverer{Fetcher: fetcher, Policy: policy, Limiter: limiter},
		Extractor:  &crawl.Extractor{Fetcher: fetcher, Policy: policy, Limiter: limiter},
		Exporter:   &export.Writer{Logger: logger},
		Logger:     logger,
	}

	return kongCtx.Run(deps)
}
