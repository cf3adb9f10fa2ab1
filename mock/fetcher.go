// Package mock provides function-field mock implementations of the
// cnesbeds interfaces for testing.
package mock

import (
	"context"

	"github.com/gmfreire/cnesbeds"
)

var _ cnesbeds.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cnesbeds.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
