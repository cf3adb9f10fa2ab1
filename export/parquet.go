package export

import (
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gmfreire/cnesbeds"
)

// writeParquet writes the dataset as a Parquet file. The row schema comes
// from the parquet struct tags on cnesbeds.BedRecord.
func writeParquet(path string, ds cnesbeds.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	writer := goparquet.NewGenericWriter[cnesbeds.BedRecord](f)
	if len(ds) > 0 {
		if _, err := writer.Write(ds); err != nil {
			writer.Close()
			f.Close()
			return err
		}
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
