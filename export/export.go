// Package export writes bed datasets to the supported output formats.
// The format set is a closed enumeration; each format carries its own
// writer, replacing dynamic dispatch with an exhaustive switch.
package export

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/gmfreire/cnesbeds"
)

// extensions maps each file-backed format to its output extension.
var extensions = map[cnesbeds.Format]string{
	cnesbeds.FormatExcel:   ".xlsx",
	cnesbeds.FormatCSV:     ".csv",
	cnesbeds.FormatParquet: ".parquet",
	cnesbeds.FormatPickle:  ".gob",
	cnesbeds.FormatJSON:    ".json",
}

// Ensure Writer implements cnesbeds.Exporter at compile time.
var _ cnesbeds.Exporter = (*Writer)(nil)

// Writer dispatches a dataset to the writer for the requested format.
// File formats write <dir>/<table><ext>; SQL appends to the table through
// the configured DatasetAppender.
type Writer struct {
	Logger *slog.Logger
}

// Export writes the dataset to the sink selected by the options. An
// unrecognized format selector is a configuration error reported to the
// caller and logged, never silently ignored.
func (w *Writer) Export(ctx context.Context, ds cnesbeds.Dataset, opts cnesbeds.ExportOptions) error {
	format, err := cnesbeds.ParseFormat(string(opts.Format))
	if err != nil {
		if w.Logger != nil {
			w.Logger.Error("invalid export format requested",
				"format", string(opts.Format),
				"error", cnesbeds.ErrorMessage(err),
			)
		}
		return err
	}

	if format == cnesbeds.FormatSQL {
		if opts.SQL == nil {
			return cnesbeds.Errorf(cnesbeds.EINVALID, "SQL export requires a database connection")
		}
		return opts.SQL.AppendDataset(ctx, opts.TableName, ds)
	}

	path := filepath.Join(opts.Dir, opts.TableName+extensions[format])
	switch format {
	case cnesbeds.FormatExcel:
		return writeExcel(path, ds, opts.Index)
	case cnesbeds.FormatCSV:
		return writeCSV(path, ds, opts.Index)
	case cnesbeds.FormatParquet:
		return writeParquet(path, ds)
	case cnesbeds.FormatPickle:
		return writeGob(path, ds)
	case cnesbeds.FormatJSON:
		return writeJSON(path, ds)
	}
	return cnesbeds.Errorf(cnesbeds.EINTERNAL, "unhandled export format %q", string(format))
}

// recordRow converts a record into its fixed column order as strings.
func recordRow(r cnesbeds.BedRecord) []string {
	return []string{
		r.CNES,
		r.Facility,
		string(r.Region),
		r.Municipality,
		r.BedType,
		r.Specialty,
		strconv.Itoa(int(r.Existing)),
		strconv.Itoa(int(r.SUS)),
		strconv.Itoa(int(r.NonSUS)),
	}
}
