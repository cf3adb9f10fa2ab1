package mock

import (
	"context"

	"github.com/gmfreire/cnesbeds"
)

var _ cnesbeds.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of cnesbeds.TableExtractor.
type TableExtractor struct {
	ExtractTableFn func(ctx context.Context, url string, region cnesbeds.RegionCode) ([]cnesbeds.BedRecord, error)
}

func (e *TableExtractor) ExtractTable(ctx context.Context, url string, region cnesbeds.RegionCode) ([]cnesbeds.BedRecord, error) {
	return e.ExtractTableFn(ctx, url, region)
}
