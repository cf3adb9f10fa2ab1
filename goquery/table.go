package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gmfreire/cnesbeds"
)

const (
	// classificationSelector matches the header text fragments that
	// classify a detail page by bed type and specialty.
	classificationSelector = `font[color="#ffcc99"][face="verdana,arial"][size="1"]`

	// highlightedRowSelector matches the data rows of the bed table.
	highlightedRowSelector = `tr[bgcolor="#cccccc"]`
)

// ParseBedTable reads the bed table on one detail page into records. The
// owning region is stamped onto every record rather than derived from the
// page. Absent classification markers are an EEMPTY (retryable) condition;
// a malformed data row is an EINVALID (fatal) one. There is no partial-row
// recovery.
func ParseBedTable(html string, region cnesbeds.RegionCode) ([]cnesbeds.BedRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cnesbeds.Errorf(cnesbeds.EINVALID, "failed to parse HTML: %v", err)
	}

	headers := doc.Find(classificationSelector)
	if headers.Length() < 2 {
		return nil, cnesbeds.Errorf(cnesbeds.EEMPTY, "bed classification header not found")
	}

	bedType, specialty, err := splitClassification(headers.Eq(1).Text())
	if err != nil {
		return nil, err
	}

	var records []cnesbeds.BedRecord
	var rowErr error
	doc.Find(bedTableSelector).First().Find(highlightedRowSelector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 5 {
			rowErr = cnesbeds.Errorf(cnesbeds.EINVALID, "bed table row %d has %d cells, want 5", i, cells.Length())
			return false
		}

		existing, err := parseCount(cells.Eq(3).Text())
		if err != nil {
			rowErr = cnesbeds.Errorf(cnesbeds.EINVALID, "bed table row %d: existing count %q is not a number", i, cells.Eq(3).Text())
			return false
		}
		sus, err := parseCount(cells.Eq(4).Text())
		if err != nil {
			rowErr = cnesbeds.Errorf(cnesbeds.EINVALID, "bed table row %d: SUS count %q is not a number", i, cells.Eq(4).Text())
			return false
		}

		records = append(records, cnesbeds.NewBedRecord(
			cells.Eq(0).Text(),
			strings.ReplaceAll(cells.Eq(1).Text(), "\n", ""),
			region,
			cells.Eq(2).Text(),
			bedType,
			specialty,
			existing,
			sus,
		))
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return records, nil
}

// splitClassification splits the second header fragment on " - " and
// derives the two labels. The page renders an extra space after the first
// dash, so segment 2 carries exactly one leading character that is
// stripped before upper-casing; the specialty is the last segment.
func splitClassification(text string) (bedType, specialty string, err error) {
	segments := strings.Split(text, " - ")
	if len(segments) < 2 {
		return "", "", cnesbeds.Errorf(cnesbeds.EEMPTY, "unexpected bed classification header %q", text)
	}
	runes := []rune(segments[1])
	if len(runes) < 1 {
		return "", "", cnesbeds.Errorf(cnesbeds.EEMPTY, "unexpected bed classification header %q", text)
	}
	bedType = strings.ToUpper(string(runes[1:]))
	specialty = strings.ToUpper(segments[len(segments)-1])
	return bedType, specialty, nil
}

// parseCount parses a bed count cell. Surrounding whitespace is tolerated,
// anything else is malformed.
func parseCount(s string) (int32, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
