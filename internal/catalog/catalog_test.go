package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverySpecIsComplete(t *testing.T) {
	for _, name := range Names() {
		spec, ok := Lookup(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, spec.Table, "%s: table", name)
		assert.NotEmpty(t, spec.BaseColumns, "%s: base columns", name)
		assert.NotEmpty(t, spec.NameColumn, "%s: name column", name)
		assert.NotEmpty(t, spec.PositionColumn, "%s: position column", name)
		assert.NotEmpty(t, spec.BundleKey, "%s: bundle key", name)
		assert.Positive(t, spec.DefaultLimit, "%s: default limit", name)
	}
}

func TestWeeklySpecsCarryWeekColumn(t *testing.T) {
	for _, name := range Names() {
		spec, _ := Lookup(name)
		if spec.Weekly {
			assert.Contains(t, spec.BaseColumns, "week", name)
		}
	}
}

func TestLookupUnknownDataset(t *testing.T) {
	_, ok := Lookup("bowling")
	assert.False(t, ok)
}

func TestDictionarySearch(t *testing.T) {
	all := Dictionary(nil)
	assert.NotEmpty(t, all)

	hits := Dictionary([]string{"touchdown"})
	assert.NotEmpty(t, hits)
	for _, f := range hits {
		assert.Contains(t, f.Description, "touchdown")
	}

	assert.Empty(t, Dictionary([]string{"zamboni"}))
}
