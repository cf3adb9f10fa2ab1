package cnesbeds

import "context"

// Fetcher retrieves HTML content from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the decoded page body.
	// The context controls cancellation; implementations enforce the
	// configured per-request timeout.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// LinkDiscoverer finds the detail-page URLs that contain bed tables for
// one region. Implementations never return an empty list on success: an
// empty parse result is retried until links appear or the retry budget is
// exhausted.
type LinkDiscoverer interface {
	DiscoverLinks(ctx context.Context, region RegionCode) ([]string, error)
}

// TableExtractor reads the bed table on one detail page into records.
// The region is carried through onto produced records, not re-derived
// from the page.
type TableExtractor interface {
	ExtractTable(ctx context.Context, url string, region RegionCode) ([]BedRecord, error)
}

// CollectProgress reports progress as a region's links are processed.
// It is an observable side effect only, never part of the return contract.
type CollectProgress struct {
	Region    RegionCode
	URL       string
	Completed int
	Total     int
}

// ProgressFunc is called once per completed link.
type ProgressFunc func(CollectProgress)
