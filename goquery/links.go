// Package goquery parses CNES registry pages into domain values using CSS
// selectors. The selectors target the registry's legacy table markup:
// the distinguished content block is a bordered, centered table, and data
// rows carry a highlight background attribute.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gmfreire/cnesbeds"
)

// bedTableSelector matches the distinguished table-like content block on
// both index and detail pages.
const bedTableSelector = `table[border="1"][align="center"]`

// ParseBedLinks extracts the detail-page URLs from a region index page.
// Every anchor inside the distinguished table contributes one URL, in
// document order, prefixed with baseURL; no de-duplication. Zero anchors
// is an empty-result condition (EEMPTY) for the caller's retry policy,
// never an empty success.
func ParseBedLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cnesbeds.Errorf(cnesbeds.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find(bedTableSelector).First().Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		links = append(links, baseURL+href)
	})

	if len(links) == 0 {
		return nil, cnesbeds.Errorf(cnesbeds.EEMPTY, "no bed table links found")
	}
	return links, nil
}
