package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/gmfreire/cnesbeds"
)

// writeCSV writes the dataset as CSV with a header row. When index is
// true a leading row-number column with an empty header is included.
func writeCSV(path string, ds cnesbeds.Dataset, index bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := cnesbeds.Columns()
	if index {
		header = append([]string{""}, header...)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, r := range ds {
		row := recordRow(r)
		if index {
			row = append([]string{strconv.Itoa(i)}, row...)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
