package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesText(t *testing.T) {
	assert.True(t, MatchesText("", "apa saja"))
	assert.True(t, MatchesText("bale", "Pantai Balekambang", "Bantur"))
	assert.True(t, MatchesText("BANTUR", "Pantai Balekambang", "Bantur, Malang"))
	assert.False(t, MatchesText("ngliyep", "Pantai Balekambang", "Bantur"))
}

func TestFilterIsSubsetAndSatisfiesPredicates(t *testing.T) {
	type row struct {
		name     string
		category string
	}
	rows := []row{
		{"Keripik Singkong", "oleh-oleh"},
		{"Kaos Pantai", "souvenir"},
		{"Keripik Pisang", "oleh-oleh"},
	}

	textPred := func(r row) bool { return MatchesText("keripik", r.name) }
	categoryPred := func(r row) bool { return r.category == "oleh-oleh" }

	filtered := Filter(rows, textPred, categoryPred)

	assert.LessOrEqual(t, len(filtered), len(rows))
	for _, r := range filtered {
		assert.True(t, textPred(r))
		assert.True(t, categoryPred(r))
	}
	assert.Len(t, filtered, 2)

	// tanpa predikat semua baris lolos
	assert.Len(t, Filter(rows), len(rows))
}
