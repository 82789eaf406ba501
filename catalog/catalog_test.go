package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(results []SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.SchemeName
	}
	return out
}

func TestFindMatchesAnyField(t *testing.T) {
	// "age 60" appears in the senior-citizen tags only.
	results := Find("age 60")
	got := names(results)

	assert.Contains(t, got, "Senior Citizen's Saving Scheme (SCSS)")
	assert.Contains(t, got, "Pradhan Mantri Vaya Vandana Yojana (PMVVY)")
	assert.NotContains(t, got, "Public Provident Fund (PPF)")
	assert.Len(t, results, 2)
}

func TestFindIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, names(Find("tax")), names(Find("TAX")))
	assert.Contains(t, names(Find("PpF")), "Public Provident Fund (PPF)")
}

func TestFindEmptyQueryMatchesEverything(t *testing.T) {
	// The route layer guards the empty query; the function itself
	// matches the whole catalog.
	assert.Len(t, Find(""), len(Schemes))
}

func TestFindPreservesDefinitionOrder(t *testing.T) {
	results := Find("tax")
	require.NotEmpty(t, results)

	// Walk the catalog and check the hits appear in the same order.
	idx := 0
	for _, entry := range Schemes {
		if idx < len(results) && results[idx].SchemeName == entry.Name {
			idx++
		}
	}
	assert.Equal(t, len(results), idx, "results out of catalog-definition order")
}

func TestFindResultShape(t *testing.T) {
	results := Find("girl child")
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "sukanya-samriddhi-yojana-ssy", r.ID)
	assert.Equal(t, "Sukanya Samriddhi Yojana (SSY)", r.SchemeName)
	assert.Equal(t, "Female Child, High Interest", r.KeyBenefit)
	assert.NotEmpty(t, r.ShortDescription)
}

func TestLookup(t *testing.T) {
	entry, ok := Lookup("public provident fund (ppf)")
	require.True(t, ok)
	assert.Equal(t, "PPF", entry.Code)

	_, ok = Lookup("No Such Scheme")
	assert.False(t, ok)
}

func TestCatalogSize(t *testing.T) {
	assert.Len(t, Schemes, 18)
}
