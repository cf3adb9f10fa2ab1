package cnesbeds

import (
	"context"
	"strings"
)

// Format selects an export target. The set is closed: exactly the six
// values below are valid.
type Format string

// Supported export formats.
const (
	FormatExcel   Format = "EXCEL"
	FormatCSV     Format = "CSV"
	FormatParquet Format = "PARQUET"
	FormatPickle  Format = "PICKLE"
	FormatJSON    Format = "JSON"
	FormatSQL     Format = "SQL"
)

// Formats returns the closed set of valid formats in display order.
func Formats() []Format {
	return []Format{FormatExcel, FormatCSV, FormatParquet, FormatPickle, FormatJSON, FormatSQL}
}

// ParseFormat converts a format selector into a Format, accepting any
// case. An unrecognized selector is a configuration error (EINVALID) whose
// message enumerates the valid formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range Formats() {
		if f == valid {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, valid := range Formats() {
		names = append(names, string(valid))
	}
	return "", Errorf(EINVALID, "invalid export format %q: the available formats are %s", s, strings.Join(names, ", "))
}

// ExportOptions selects the sink for one export call.
type ExportOptions struct {
	// Format selects the output format; parsed case-insensitively.
	Format Format

	// Dir is the output directory for file-backed formats.
	Dir string

	// TableName is the output base filename (without extension), or the
	// database table name when Format is SQL.
	TableName string

	// Index, when true, prepends a row-index column where the format
	// supports one.
	Index bool

	// SQL receives the dataset when Format is SQL. Required for SQL,
	// ignored otherwise.
	SQL DatasetAppender
}

// Exporter writes a dataset to the sink selected by the options.
type Exporter interface {
	Export(ctx context.Context, ds Dataset, opts ExportOptions) error
}

// DatasetAppender appends a dataset's rows to a database table, creating
// the table when absent. Append-only: implementations never overwrite or
// replace existing rows.
type DatasetAppender interface {
	AppendDataset(ctx context.Context, table string, ds Dataset) error
}
