package crawl

import (
	"context"
	"fmt"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/goquery"
)

// DefaultBaseURL is the registry's base path, prefixed onto every
// discovered link.
const DefaultBaseURL = "http://cnes2.datasus.gov.br/"

// indexPath is the index page listing the bed-table pages of one UF,
// selected by its numeric registry identifier.
const indexPath = "Mod_Ind_Tipo_Leito.asp?VEstado="

// Ensure Discoverer implements cnesbeds.LinkDiscoverer at compile time.
var _ cnesbeds.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer finds the detail-page URLs that contain bed tables for one
// region, fetching the region's index page under the retry policy.
type Discoverer struct {
	Fetcher cnesbeds.Fetcher
	Policy  *Policy

	// BaseURL overrides DefaultBaseURL, mostly for tests.
	BaseURL string

	// Limiter, if set, throttles requests to the registry.
	Limiter *HostLimiter
}

// DiscoverLinks returns the region's detail-page URLs in document order,
// without de-duplication. An index page that currently yields zero links
// is retried inside the policy; DiscoverLinks only returns once at least
// one link was observed or the retry budget is exhausted.
func (d *Discoverer) DiscoverLinks(ctx context.Context, region cnesbeds.RegionCode) ([]string, error) {
	code, err := region.IBGE()
	if err != nil {
		return nil, err
	}

	base := d.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	url := fmt.Sprintf("%s%s%d", base, indexPath, code)

	var links []string
	err = d.Policy.Do(ctx, url, func(ctx context.Context) error {
		if d.Limiter != nil {
			if err := d.Limiter.Wait(ctx); err != nil {
				return err
			}
		}
		html, err := d.Fetcher.Fetch(ctx, url)
		if err != nil {
			return err
		}
		parsed, err := goquery.ParseBedLinks(html, base)
		if err != nil {
			return err
		}
		links = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}
