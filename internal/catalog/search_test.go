package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-apotek/internal/catalog"
)

func searchFixtures() []catalog.Medicine {
	return []catalog.Medicine{
		medicine("1", "Paracetamol 500mg", "Pain Relief", 25, "fever", "headache"),
		medicine("2", "Cetirizine 10mg", "Allergy", 40, "allergy", "runny nose"),
		medicine("3", "Strepsils Lozenges", "Throat Care", 55, "sore throat", "cough"),
		medicine("4", "Ibuprofen 400mg", "Pain Relief", 45, "pain", "fever"),
	}
}

func ids(records []catalog.Medicine) []string {
	out := make([]string, 0, len(records))
	for _, m := range records {
		out = append(out, m.ID)
	}
	return out
}

func TestSearchBlankTextAllCategoryReturnsEverything(t *testing.T) {
	records := searchFixtures()
	result := catalog.Search(records, "", catalog.CategoryAll)
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(result), "store order preserved")
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	records := searchFixtures()

	result := catalog.Search(records, "FEVER", catalog.CategoryAll)
	require.Equal(t, []string{"1", "4"}, ids(result), "matches symptom tags regardless of case")

	result = catalog.Search(records, "paraCETamol", catalog.CategoryAll)
	require.Equal(t, []string{"1"}, ids(result))

	result = catalog.Search(records, "allergy", catalog.CategoryAll)
	require.Equal(t, []string{"2"}, ids(result), "matches category text too")
}

func TestSearchSubstringMatch(t *testing.T) {
	records := searchFixtures()
	result := catalog.Search(records, "throat", catalog.CategoryAll)
	require.Equal(t, []string{"3"}, ids(result))
}

func TestSearchCategoryFilterIsExact(t *testing.T) {
	records := searchFixtures()

	result := catalog.Search(records, "", "Pain Relief")
	require.Equal(t, []string{"1", "4"}, ids(result))

	// Category comparison is as stored, not case-folded.
	result = catalog.Search(records, "", "pain relief")
	require.Empty(t, result)
}

func TestSearchFiltersAreANDed(t *testing.T) {
	records := searchFixtures()
	result := catalog.Search(records, "fever", "Pain Relief")
	require.Equal(t, []string{"1", "4"}, ids(result))

	result = catalog.Search(records, "fever", "Allergy")
	require.Empty(t, result)
}

func TestSearchNoMatchIsEmptyNotNil(t *testing.T) {
	records := searchFixtures()
	result := catalog.Search(records, "no such thing", catalog.CategoryAll)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestCategoriesDistinctInStoreOrder(t *testing.T) {
	records := searchFixtures()
	require.Equal(t, []string{"Pain Relief", "Allergy", "Throat Care"}, catalog.Categories(records))
}
