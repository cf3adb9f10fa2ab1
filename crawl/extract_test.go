package crawl_test

import (
	"context"
	"testing"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/crawl"
	"github.com/gmfreire/cnesbeds/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailPage = `<html><body>
<font color="#ffcc99" face="verdana,arial" size="1">Estado: SÃO PAULO</font>
<font color="#ffcc99" face="verdana,arial" size="1">Tipo -  Leito Cirúrgico - Geral</font>
<table border="1" align="center">
<tr bgcolor="#cccccc"><td>1234567</td><td>Hospital X</td><td>City Y</td><td>10</td><td>7</td></tr>
</table></body></html>`

// detailPageNoHeaders is missing the classification fragments, the
// registry's transient indexing mismatch.
const detailPageNoHeaders = `<html><body>
<table border="1" align="center">
<tr bgcolor="#cccccc"><td>1234567</td><td>Hospital X</td><td>City Y</td><td>10</td><td>7</td></tr>
</table></body></html>`

func TestExtractor_ExtractTable(t *testing.T) {
	t.Parallel()

	t.Run("returns one record per highlighted row", func(t *testing.T) {
		t.Parallel()

		e := &crawl.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return detailPage, nil
				},
			},
			Policy: testPolicy(3),
		}

		records, err := e.ExtractTable(context.Background(), "http://registry.test/Detalhe.asp?VTipo=01", cnesbeds.SP)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, cnesbeds.SP, records[0].Region)
		assert.Equal(t, int32(3), records[0].NonSUS)
	})

	t.Run("missing classification markers are retried", func(t *testing.T) {
		t.Parallel()

		calls := 0
		e := &crawl.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					if calls == 1 {
						return detailPageNoHeaders, nil
					}
					return detailPage, nil
				},
			},
			Policy: testPolicy(3),
		}

		records, err := e.ExtractTable(context.Background(), "http://registry.test/Detalhe.asp", cnesbeds.SP)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, records, 1)
	})

	t.Run("malformed row is fatal, not retried", func(t *testing.T) {
		t.Parallel()

		malformed := `<html><body>
<font color="#ffcc99" face="verdana,arial" size="1">Estado: SÃO PAULO</font>
<font color="#ffcc99" face="verdana,arial" size="1">Tipo -  Leito Cirúrgico - Geral</font>
<table border="1" align="center">
<tr bgcolor="#cccccc"><td>1234567</td><td>Hospital X</td><td>City Y</td><td>ten</td><td>7</td></tr>
</table></body></html>`

		calls := 0
		e := &crawl.Extractor{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					return malformed, nil
				},
			},
			Policy: testPolicy(5),
		}

		_, err := e.ExtractTable(context.Background(), "http://registry.test/Detalhe.asp", cnesbeds.SP)
		require.Error(t, err)
		assert.Equal(t, cnesbeds.EINVALID, cnesbeds.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})
}
