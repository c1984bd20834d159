package search_test

import (
	"testing"

	"github.com/gnames/gnflora/pkg/floral"
	"github.com/gnames/gnflora/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []floral.Record {
	return []floral.Record{
		{Order: "Amborellales", Family: "amborellaceae"},
		{Order: "Asparagales", Family: "orchidaceae"},
		{Order: "Asparagales", Family: "asparagaceae"},
		{Order: "Proteales", Family: "proteaceae"},
	}
}

func TestMatchByFamily(t *testing.T) {
	tests := []struct {
		msg      string
		key      string
		families []string
	}{
		{"exact lowercase", "proteaceae", []string{"proteaceae"}},
		{"uppercase input", "PROTEACEAE", []string{"proteaceae"}},
		{"mixed case input", "ProTeaCeae", []string{"proteaceae"}},
		{"unknown family", "rosaceae", nil},
		{"near miss is not a match", "proteacea", nil},
		{"empty key", "", nil},
	}

	records := testRecords()
	for _, tt := range tests {
		res := search.Match(records, tt.key, search.ByFamily)
		require.Len(t, res, len(tt.families), tt.msg)
		for i, fam := range tt.families {
			assert.Equal(t, fam, res[i].Family, tt.msg)
		}
	}
}

// TestMatchByOrder verifies an order lookup returns all its families in
// load order.
func TestMatchByOrder(t *testing.T) {
	res := search.Match(testRecords(), "asparagales", search.ByOrder)
	require.Len(t, res, 2)
	assert.Equal(t, "orchidaceae", res[0].Family)
	assert.Equal(t, "asparagaceae", res[1].Family)
}

func TestMatchAll(t *testing.T) {
	records := testRecords()

	res := search.Match(records, "", search.All)
	assert.Len(t, res, len(records), "all mode returns every record")

	res = search.Match(records, "nonsense", search.All)
	assert.Len(t, res, len(records), "all mode ignores the key")
}

func TestMatchEmptyDataset(t *testing.T) {
	res := search.Match(nil, "proteaceae", search.ByFamily)
	assert.Empty(t, res, "no records means no matches, not an error")
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		msg  string
		key  string
		mode search.Mode
		name string
		dist int
	}{
		{"one letter off", "orchidacea", search.ByFamily, "orchidaceae", 1},
		{"case does not count", "ORCHIDACEAE", search.ByFamily,
			"orchidaceae", 0},
		{"order names", "asparagale", search.ByOrder, "Asparagales", 1},
	}

	records := testRecords()
	for _, tt := range tests {
		name, dist, ok := search.Suggest(records, tt.key, tt.mode)
		require.True(t, ok, tt.msg)
		assert.Equal(t, tt.name, name, tt.msg)
		assert.Equal(t, tt.dist, dist, tt.msg)
	}
}

func TestSuggestEmptyDataset(t *testing.T) {
	_, _, ok := search.Suggest(nil, "orchidaceae", search.ByFamily)
	assert.False(t, ok, "nothing to suggest from an empty dataset")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "family", search.ByFamily.String())
	assert.Equal(t, "order", search.ByOrder.String())
	assert.Equal(t, "all", search.All.String())
}
