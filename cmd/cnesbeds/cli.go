package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    cnesbeds.Config
	Logger    *slog.Logger
	Collector *crawl.Collector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Collect CollectCmd `cmd:"" help:"Collect the complete bed table for one UF"`
	Brazil  BrazilCmd  `cmd:"" help:"Collect the complete national bed table"`
	Regions RegionsCmd `cmd:"" help:"List the 27 UF codes in collection order"`

	RPS float64 `default:"1" help:"Request rate limit against the registry (requests per second)"`
}

// exportFlags are the export options shared by the collection commands.
type exportFlags struct {
	Export bool   `default:"true" negatable:"" help:"Export the collected dataset"`
	Format string `default:"excel" help:"Output format: excel, csv, parquet, pickle, json or sql"`
	Out    string `default:"output" help:"Output directory for file formats"`
	Table  string `help:"Output filename (without extension) or SQL table name"`
	Index  bool   `help:"Include a row-index column where the format supports one"`
	DB     string `default:"cnesbeds.db" help:"SQLite database path for the sql format"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct {
	UF string `arg:"" help:"UF acronym (e.g. RJ)"`
	exportFlags
}

// BrazilCmd is the "brazil" subcommand.
type BrazilCmd struct {
	Concurrency int `short:"c" default:"1" help:"Regions collected in parallel (1 = sequential)"`
	exportFlags
}

// RegionsCmd is the "regions" subcommand.
type RegionsCmd struct{}
