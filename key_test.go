package matchsorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Name    string
	Email   string
	Aliases []string
}

func contactKeys() []Key[contact] {
	return []Key[contact]{
		KeyOf(func(c contact) string { return c.Name }),
		KeyOf(func(c contact) string { return c.Email }),
	}
}

func TestHighestRankingPicksBestAcrossKeys(t *testing.T) {
	r := newRanker("green", false, 0)
	c := contact{Name: "Mr. Forest", Email: "green@example.com"}

	info := highestRanking(c, contactKeys(), r)
	assert.Equal(t, 0, StartsWith.Compare(info.Rank))
	assert.Equal(t, "green@example.com", info.RankedValue)
	assert.Equal(t, 1, info.KeyIndex)
}

func TestHighestRankingEarliestValueWinsTies(t *testing.T) {
	r := newRanker("green", false, 0)
	c := contact{Name: "greenhouse", Email: "greenhouse"}

	info := highestRanking(c, contactKeys(), r)
	require.Equal(t, 0, StartsWith.Compare(info.Rank))
	assert.Equal(t, 0, info.KeyIndex, "equal ranks must keep the first key's value")
}

func TestHighestRankingFlattensMultiValueKeys(t *testing.T) {
	r := newRanker("zeta", false, 0)
	keys := []Key[contact]{
		NewKey(func(c contact) []string { return c.Aliases }),
		KeyOf(func(c contact) string { return c.Name }),
	}
	c := contact{Name: "zeta", Aliases: []string{"alpha", "beta"}}

	info := highestRanking(c, keys, r)
	assert.Equal(t, 0, CaseSensitiveEqual.Compare(info.Rank))
	// Name sits after the two alias values in the flattened sequence.
	assert.Equal(t, 2, info.KeyIndex)
	assert.Equal(t, "zeta", info.RankedValue)
}

func TestHighestRankingMaxRankingClamps(t *testing.T) {
	r := newRanker("green", false, 0)
	keys := []Key[contact]{
		KeyOf(func(c contact) string { return c.Name }).WithMaxRanking(Contains),
	}
	c := contact{Name: "green"}

	info := highestRanking(c, keys, r)
	assert.Equal(t, 0, Contains.Compare(info.Rank), "exact match should be capped at contains")
}

func TestHighestRankingMinRankingPromotes(t *testing.T) {
	r := newRanker("plgnd", false, 0)
	keys := []Key[contact]{
		KeyOf(func(c contact) string { return c.Name }).WithMinRanking(Contains),
	}

	info := highestRanking(contact{Name: "playground"}, keys, r)
	assert.Equal(t, 0, Contains.Compare(info.Rank), "fuzzy match should be promoted to the floor")

	info = highestRanking(contact{Name: "unrelated"}, keys, r)
	assert.True(t, info.Rank.IsNoMatch(), "no-match must never be promoted")
}

func TestHighestRankingAllMiss(t *testing.T) {
	r := newRanker("xyzzy", false, 0)
	info := highestRanking(contact{Name: "green", Email: "blue"}, contactKeys(), r)
	assert.True(t, info.Rank.IsNoMatch())
	assert.Equal(t, -1, info.KeyIndex)
	assert.Empty(t, info.RankedValue)
}

func TestKeyModifiersReturnCopies(t *testing.T) {
	base := KeyOf(func(c contact) string { return c.Name })
	capped := base.WithMaxRanking(Contains)

	r := newRanker("green", false, 0)
	info := highestRanking(contact{Name: "green"}, []Key[contact]{base}, r)
	assert.Equal(t, 0, CaseSensitiveEqual.Compare(info.Rank), "modifying a copy must not touch the base key")

	info = highestRanking(contact{Name: "green"}, []Key[contact]{capped}, r)
	assert.Equal(t, 0, Contains.Compare(info.Rank))
}

func TestHighestRankingCarriesKeyThreshold(t *testing.T) {
	r := newRanker("green", false, 0)
	keys := []Key[contact]{
		KeyOf(func(c contact) string { return c.Name }).WithThreshold(StartsWith),
	}
	info := highestRanking(contact{Name: "evergreen"}, keys, r)
	assert.Equal(t, 0, Contains.Compare(info.Rank))
	assert.Equal(t, 0, StartsWith.Compare(info.KeyThreshold))
}
