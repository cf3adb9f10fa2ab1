package goquery_test

import (
	"testing"

	"github.com/gmfreire/cnesbeds"
	"github.com/gmfreire/cnesbeds/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = `<!DOCTYPE html>
<html>
<body>
<table border="0"><tr><td><a href="Outside.asp">ignored</a></td></tr></table>
<table border="1" align="center">
	<tr><td><a href="Mod_Ind_Tipo_Leito_Detalhe.asp?VTipo=01&VEstado=33">Cirúrgico - Geral</a></td></tr>
	<tr><td><a href="Mod_Ind_Tipo_Leito_Detalhe.asp?VTipo=02&VEstado=33">Clínico - Geral</a></td></tr>
	<tr><td><a href="Mod_Ind_Tipo_Leito_Detalhe.asp?VTipo=01&VEstado=33">Cirúrgico - Geral</a></td></tr>
</table>
</body>
</html>`

func TestParseBedLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts anchors from the distinguished table in document order", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ParseBedLinks(indexPage, "http://cnes2.datasus.gov.br/")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://cnes2.datasus.gov.br/Mod_Ind_Tipo_Leito_Detalhe.asp?VTipo=01&VEstado=33",
			"http://cnes2.datasus.gov.br/Mod_Ind_Tipo_Leito_Detalhe.asp?VTipo=02&VEstado=33",
			"http://cnes2.datasus.gov.br/Mod_Ind_Tipo_Leito_Detalhe.asp?VTipo=01&VEstado=33",
		}, links)
	})

	t.Run("repeated links are kept, not de-duplicated", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ParseBedLinks(indexPage, "http://cnes2.datasus.gov.br/")
		require.NoError(t, err)
		assert.Equal(t, links[0], links[2])
	})

	t.Run("page without links is an empty-result condition", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table border="1" align="center"><tr><td>nothing here</td></tr></table></body></html>`
		_, err := goquery.ParseBedLinks(html, "http://cnes2.datasus.gov.br/")
		require.Error(t, err)
		assert.Equal(t, cnesbeds.EEMPTY, cnesbeds.ErrorCode(err))
	})

	t.Run("page without the distinguished table is an empty-result condition", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>maintenance</p></body></html>`
		_, err := goquery.ParseBedLinks(html, "http://cnes2.datasus.gov.br/")
		require.Error(t, err)
		assert.Equal(t, cnesbeds.EEMPTY, cnesbeds.ErrorCode(err))
	})
}
