package cnesbeds_test

import (
	"testing"

	"github.com/gmfreire/cnesbeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBedRecord(t *testing.T) {
	t.Parallel()

	t.Run("derives the non-SUS count from the two counts", func(t *testing.T) {
		t.Parallel()

		rec := cnesbeds.NewBedRecord("1234567", "Hospital X", cnesbeds.RJ, "City Y", "LEITO CIRÚRGICO", "GERAL", 10, 7)
		assert.Equal(t, int32(10), rec.Existing)
		assert.Equal(t, int32(7), rec.SUS)
		assert.Equal(t, int32(3), rec.NonSUS)
	})

	t.Run("does not clamp when SUS exceeds existing", func(t *testing.T) {
		t.Parallel()

		rec := cnesbeds.NewBedRecord("1234567", "Hospital X", cnesbeds.RJ, "City Y", "TIPO", "GERAL", 3, 5)
		assert.Equal(t, int32(-2), rec.NonSUS)
	})

	t.Run("preserves leading zeros on the registry identifier", func(t *testing.T) {
		t.Parallel()

		rec := cnesbeds.NewBedRecord("0012345", "Hospital X", cnesbeds.SP, "City Y", "TIPO", "GERAL", 1, 1)
		assert.Equal(t, "0012345", rec.CNES)
	})
}

func TestBedRecord_Validate(t *testing.T) {
	t.Parallel()

	valid := cnesbeds.NewBedRecord("1234567", "Hospital X", cnesbeds.RJ, "City Y", "TIPO", "GERAL", 10, 7)

	t.Run("valid record passes", func(t *testing.T) {
		t.Parallel()

		rec := valid
		require.NoError(t, rec.Validate())
	})

	t.Run("missing CNES identifier", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.CNES = ""
		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, cnesbeds.EINVALID, cnesbeds.ErrorCode(err))
	})

	t.Run("invalid region", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.Region = "XX"
		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, cnesbeds.EINVALID, cnesbeds.ErrorCode(err))
	})

	t.Run("negative counts", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.Existing = -1
		assert.Error(t, rec.Validate())

		rec = valid
		rec.SUS = -1
		assert.Error(t, rec.Validate())
	})
}

func TestDataset_Fingerprint(t *testing.T) {
	t.Parallel()

	a := cnesbeds.NewBedRecord("1234567", "Hospital X", cnesbeds.RJ, "City Y", "TIPO", "GERAL", 10, 7)
	b := cnesbeds.NewBedRecord("7654321", "Hospital Z", cnesbeds.SP, "City W", "TIPO", "GERAL", 5, 2)

	t.Run("identical datasets hash identically", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, cnesbeds.Dataset{a, b}.Fingerprint(), cnesbeds.Dataset{a, b}.Fingerprint())
	})

	t.Run("order matters", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, cnesbeds.Dataset{a, b}.Fingerprint(), cnesbeds.Dataset{b, a}.Fingerprint())
	})

	t.Run("content matters", func(t *testing.T) {
		t.Parallel()

		c := a
		c.SUS = 6
		assert.NotEqual(t, cnesbeds.Dataset{a}.Fingerprint(), cnesbeds.Dataset{c}.Fingerprint())
	})
}

func TestColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"CNES", "ESTABELECIMENTO", "UF", "MUNICIPIO", "TIPO",
		"ESPECIALIDADE", "EXISTENTES", "SUS", "NAO_SUS",
	}, cnesbeds.Columns())
}
