package main

import (
	"fmt"
	"os"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/sqlite"
)

// buildExportOptions converts the shared export flags into options,
// opening the SQLite sink when the sql format is requested. The returned
// cleanup func closes the sink and is safe to call unconditionally.
func (f *exportFlags) buildExportOptions(deps *Dependencies) (*cnesbeds.ExportOptions, func() error, error) {
	noop := func() error { return nil }
	if !f.Export {
		return nil, noop, nil
	}

	format, err := cnesbeds.ParseFormat(f.Format)
	if err != nil {
		deps.Logger.Error("invalid export format requested", "format", f.Format)
		return nil, noop, err
	}

	opts := &cnesbeds.ExportOptions{
		Format:    format,
		Dir:       f.Out,
		TableName: f.Table,
		Index:     f.Index,
	}

	if format == cnesbeds.FormatSQL {
		db := sqlite.NewDB(f.DB)
		if err := db.Open(); err != nil {
			return nil, noop, fmt.Errorf("failed to open database at %q: %w", f.DB, err)
		}
		opts.SQL = sqlite.NewBedService(db)
		return opts, db.Close, nil
	}

	if err := os.MkdirAll(f.Out, 0755); err != nil {
		return nil, noop, fmt.Errorf("failed to create output directory %q: %w", f.Out, err)
	}
	return opts, noop, nil
}

// progressPrinter writes a carriage-return progress line per completed link.
func progressPrinter(deps *Dependencies) cnesbeds.ProgressFunc {
	return func(p cnesbeds.CollectProgress) {
		fmt.Fprintf(deps.Stdout, "\rUF: %s. Reading table %d out of %d.", p.Region, p.Completed, p.Total)
	}
}

// Run executes the collect command.
func (c *CollectCmd) Run(deps *Dependencies) error {
	region, err := cnesbeds.ParseRegion(c.UF)
	if err != nil {
		return err
	}

	opts, closeSink, err := c.buildExportOptions(deps)
	if err != nil {
		return err
	}
	defer closeSink()

	ds, err := deps.Collector.CollectRegion(deps.Ctx, region, progressPrinter(deps), opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nCollected %d records for %s (fingerprint %s)\n", len(ds), region, ds.Fingerprint())
	return nil
}

// Run executes the brazil command.
func (b *BrazilCmd) Run(deps *Dependencies) error {
	opts, closeSink, err := b.buildExportOptions(deps)
	if err != nil {
		return err
	}
	defer closeSink()

	deps.Collector.Concurrency = b.Concurrency

	fmt.Fprintf(deps.Stdout, "UFs to collect: %v\n", cnesbeds.AllRegions())
	ds, err := deps.Collector.CollectBrazil(deps.Ctx, progressPrinter(deps), opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nCollected %d records for Brazil (fingerprint %s)\n", len(ds), ds.Fingerprint())
	return nil
}

// Run executes the regions command.
func (r *RegionsCmd) Run(deps *Dependencies) error {
	for _, region := range cnesbeds.AllRegions() {
		code, err := region.IBGE()
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\t%d\n", region, code)
	}
	return nil
}
