package cnesbeds

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// BedRecord is one row of the output dataset: the bed counts of one
// facility for one bed type and specialty.
type BedRecord struct {
	// CNES is the facility's registry identifier. It may carry leading
	// zeros and must never be coerced to a number.
	CNES         string     `json:"cnes" parquet:"cnes"`
	Facility     string     `json:"estabelecimento" parquet:"estabelecimento"`
	Region       RegionCode `json:"uf" parquet:"uf"`
	Municipality string     `json:"municipio" parquet:"municipio"`
	BedType      string     `json:"tipo" parquet:"tipo"`
	Specialty    string     `json:"especialidade" parquet:"especialidade"`
	Existing     int32      `json:"existentes" parquet:"existentes"`
	SUS          int32      `json:"sus" parquet:"sus"`

	// NonSUS is derived as Existing - SUS. The source is trusted: the
	// value is not clamped when SUS exceeds Existing in malformed data.
	NonSUS int32 `json:"nao_sus" parquet:"nao_sus"`
}

// NewBedRecord builds a record with NonSUS derived from the two counts.
// All NonSUS derivation goes through here.
func NewBedRecord(cnes, facility string, region RegionCode, municipality, bedType, specialty string, existing, sus int32) BedRecord {
	return BedRecord{
		CNES:         cnes,
		Facility:     facility,
		Region:       region,
		Municipality: municipality,
		BedType:      bedType,
		Specialty:    specialty,
		Existing:     existing,
		SUS:          sus,
		NonSUS:       existing - sus,
	}
}

// Validate returns an error if the record contains invalid fields.
func (r *BedRecord) Validate() error {
	if r.CNES == "" {
		return Errorf(EINVALID, "bed record CNES identifier required")
	}
	if !r.Region.Valid() {
		return Errorf(EINVALID, "bed record region %q invalid", string(r.Region))
	}
	if r.Existing < 0 {
		return Errorf(EINVALID, "bed record existing count negative")
	}
	if r.SUS < 0 {
		return Errorf(EINVALID, "bed record SUS count negative")
	}
	return nil
}

// Dataset is an ordered sequence of BedRecord sharing the fixed nine-column
// schema. Concatenation is plain append: no deduplication, no merge-by-key.
type Dataset []BedRecord

// Columns returns the fixed output schema in column order.
func Columns() []string {
	return []string{
		"CNES", "ESTABELECIMENTO", "UF", "MUNICIPIO", "TIPO",
		"ESPECIALIDADE", "EXISTENTES", "SUS", "NAO_SUS",
	}
}

// Fingerprint returns a stable hash of the dataset's records in order.
// Re-running extraction against unchanged pages yields an identical
// fingerprint, which makes change detection and idempotence checks cheap.
func (d Dataset) Fingerprint() string {
	h := xxhash.New()
	for _, r := range d {
		// unit and record separators keep adjacent fields from colliding
		fmt.Fprintf(h, "%s\x1f%s\x1f%s\x1f%s\x1f%s\x1f%s\x1f%d\x1f%d\x1f%d\x1e",
			r.CNES, r.Facility, r.Region, r.Municipality,
			r.BedType, r.Specialty, r.Existing, r.SUS, r.NonSUS)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
