package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompaniesCSV(t *testing.T) {
	csv := `name,website,industry,notes
Acme,https://acme.com,Manufacturing,Big CSR program
Beta Co,beta.vn,,
,skipped.com,,
Gamma,,,`

	companies, err := ParseCompaniesCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, companies, 3)

	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, "https://acme.com", companies[0].Website)
	assert.Equal(t, "Manufacturing", companies[0].Industry)
	assert.Equal(t, "Big CSR program", companies[0].Notes)

	assert.Equal(t, "Beta Co", companies[1].Name)
	assert.Equal(t, "beta.vn", companies[1].Website)

	assert.Equal(t, "Gamma", companies[2].Name)
	assert.Empty(t, companies[2].Website)
}

func TestParseCompaniesCSVHeaderCaseInsensitive(t *testing.T) {
	csv := "Name,Website\nAcme,acme.com\n"
	companies, err := ParseCompaniesCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "acme.com", companies[0].Website)
}

func TestParseCompaniesCSVUnknownColumnsIgnored(t *testing.T) {
	csv := "name,priority\nAcme,high\n"
	companies, err := ParseCompaniesCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].Name)
}

func TestParseCompaniesCSVMissingName(t *testing.T) {
	_, err := ParseCompaniesCSV(strings.NewReader("website\nacme.com\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestParseCompaniesCSVEmpty(t *testing.T) {
	_, err := ParseCompaniesCSV(strings.NewReader(""))
	require.Error(t, err)
}
