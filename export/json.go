package export

import (
	"encoding/gob"
	"encoding/json"
	"os"

	"github.com/gmfreire/cnesbeds"
)

// writeJSON writes the dataset as a JSON array of records, keyed by the
// registry's column names.
func writeJSON(path string, ds cnesbeds.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(ds); err != nil {
		return err
	}
	return f.Close()
}

// writeGob writes the dataset in Go's native binary record encoding.
// The PICKLE format maps here: gob is the binary-serialization target for
// a Go producer.
func writeGob(path string, ds cnesbeds.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	if err := enc.Encode(ds); err != nil {
		return err
	}
	return f.Close()
}
