package crawl

import (
	"context"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/goquery"
)

// Ensure Extractor implements cnesbeds.TableExtractor at compile time.
var _ cnesbeds.TableExtractor = (*Extractor)(nil)

// Extractor reads one detail page's bed table under the retry policy.
// Beyond the shared retryable conditions, a page whose classification
// markers are structurally absent (an indexing mismatch on the registry
// side) is retried rather than treated as fatal.
type Extractor struct {
	Fetcher cnesbeds.Fetcher
	Policy  *Policy

	// Limiter, if set, throttles requests to the registry.
	Limiter *HostLimiter
}

// ExtractTable fetches the detail page and returns one record per
// highlighted table row, in document order, stamped with the owning
// region. A malformed data row is fatal and propagates without retry.
func (e *Extractor) ExtractTable(ctx context.Context, url string, region cnesbeds.RegionCode) ([]cnesbeds.BedRecord, error) {
	var records []cnesbeds.BedRecord
	err := e.Policy.Do(ctx, url, func(ctx context.Context) error {
		if e.Limiter != nil {
			if err := e.Limiter.Wait(ctx); err != nil {
				return err
			}
		}
		html, err := e.Fetcher.Fetch(ctx, url)
		if err != nil {
			return err
		}
		parsed, err := goquery.ParseBedTable(html, region)
		if err != nil {
			return err
		}
		records = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
