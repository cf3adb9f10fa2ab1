package mock

import (
	"context"

	"github.com/gmfreire/cnesbeds"
)

var _ cnesbeds.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of cnesbeds.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, ds cnesbeds.Dataset, opts cnesbeds.ExportOptions) error
}

func (e *Exporter) Export(ctx context.Context, ds cnesbeds.Dataset, opts cnesbeds.ExportOptions) error {
	return e.ExportFn(ctx, ds, opts)
}

var _ cnesbeds.DatasetAppender = (*DatasetAppender)(nil)

// DatasetAppender is a mock implementation of cnesbeds.DatasetAppender.
type DatasetAppender struct {
	AppendDatasetFn func(ctx context.Context, table string, ds cnesbeds.Dataset) error
}

func (a *DatasetAppender) AppendDataset(ctx context.Context, table string, ds cnesbeds.Dataset) error {
	return a.AppendDatasetFn(ctx, table, ds)
}
