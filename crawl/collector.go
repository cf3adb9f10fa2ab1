package crawl

import (
	"context"
	"log/slog"

	"github.com/gmfreire/cnesbeds"
	"golang.org/x/sync/errgroup"
)

// Collector drives discovery and extraction into datasets: one region at
// a time, or the full national run over all 27 federated units.
type Collector struct {
	Discoverer cnesbeds.LinkDiscoverer
	Extractor  cnesbeds.TableExtractor

	// Exporter receives the dataset when an export is requested.
	Exporter cnesbeds.Exporter

	// Concurrency bounds how many regions a national run processes in
	// parallel. Zero or one means fully sequential, matching the
	// registry-friendly default. Link processing within a region is
	// always sequential so document order is reproducible.
	Concurrency int

	Logger *slog.Logger
}

// CollectRegion collects the complete bed table for one region: all links
// discovered, then each link extracted in order, records concatenated in
// link order. The progress callback, if provided, is called once per
// completed link. When export is non-nil the dataset is exported before
// returning; an export failure fails the call.
func (c *Collector) CollectRegion(ctx context.Context, region cnesbeds.RegionCode, progress cnesbeds.ProgressFunc, export *cnesbeds.ExportOptions) (cnesbeds.Dataset, error) {
	links, err := c.Discoverer.DiscoverLinks(ctx, region)
	if err != nil {
		return nil, err
	}

	var ds cnesbeds.Dataset
	for i, link := range links {
		records, err := c.Extractor.ExtractTable(ctx, link, region)
		if err != nil {
			return nil, err
		}
		ds = append(ds, records...)

		if progress != nil {
			progress(cnesbeds.CollectProgress{
				Region:    region,
				URL:       link,
				Completed: i + 1,
				Total:     len(links),
			})
		}
	}

	if export != nil {
		if err := c.export(ctx, ds, *export, defaultTableName(export.TableName, string(region)+"_Beds")); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// CollectBrazil collects the national bed table by driving CollectRegion
// over the fixed ordered list of 27 regions and concatenating the
// per-region datasets in list order. Per-region export is never performed
// here; only the final dataset is exported when export is non-nil. A
// fatal failure on any region aborts the entire run with no partial
// output persisted.
func (c *Collector) CollectBrazil(ctx context.Context, progress cnesbeds.ProgressFunc, export *cnesbeds.ExportOptions) (cnesbeds.Dataset, error) {
	regions := cnesbeds.AllRegions()
	parts := make([]cnesbeds.Dataset, len(regions))

	if c.Concurrency > 1 {
		// Positional slots keep national output order identical to the
		// sequential run; every fetch keeps its own retry counter.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.Concurrency)
		for i, region := range regions {
			i, region := i, region
			g.Go(func() error {
				ds, err := c.CollectRegion(gctx, region, progress, nil)
				if err != nil {
					return err
				}
				parts[i] = ds
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, region := range regions {
			ds, err := c.CollectRegion(ctx, region, progress, nil)
			if err != nil {
				return nil, err
			}
			parts[i] = ds
		}
	}

	var national cnesbeds.Dataset
	for _, part := range parts {
		national = append(national, part...)
	}

	if export != nil {
		if err := c.export(ctx, national, *export, defaultTableName(export.TableName, "Brazil_Beds")); err != nil {
			return nil, err
		}
	}

	return national, nil
}

func (c *Collector) export(ctx context.Context, ds cnesbeds.Dataset, opts cnesbeds.ExportOptions, tableName string) error {
	if c.Exporter == nil {
		return cnesbeds.Errorf(cnesbeds.EINVALID, "export requested but no exporter configured")
	}
	opts.TableName = tableName
	return c.Exporter.Export(ctx, ds, opts)
}

func defaultTableName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
