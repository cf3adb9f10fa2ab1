package mock

import (
	"context"

	"github.com/gmfreire/cnesbeds"
)

var _ cnesbeds.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of cnesbeds.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(ctx context.Context, region cnesbeds.RegionCode) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(ctx context.Context, region cnesbeds.RegionCode) ([]string, error) {
	return d.DiscoverLinksFn(ctx, region)
}
