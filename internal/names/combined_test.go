package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-reconciler/internal/roster"
	"roster-reconciler/internal/translit"
)

func newTestSplitter() *CombinedSplitter {
	return NewCombinedSplitter(DefaultCombinedConfig(), translit.New(translit.DefaultConfig()))
}

func TestCombinedSplitter_Concatenation(t *testing.T) {
	s := newTestSplitter()
	entries := []roster.Entry{
		{ID: "3", Surname: "Коваль", Firstname: "Маргарита"},
		{ID: "4", Surname: "Петренко", Firstname: "Іван"},
	}

	got := s.Split("margaritakoval", entries)
	require.NotEmpty(t, got)

	best := got[0]
	assert.Equal(t, "3", best.Entry.ID)
	assert.Greater(t, best.Quality, 0.8)
	assert.True(t, best.FirstnameFirst)
	assert.False(t, best.Breakpoint)

	for _, c := range got[1:] {
		assert.NotEqual(t, "3", c.Entry.ID, "candidates are unique per ID")
	}
}

func TestCombinedSplitter_SurnameFirst(t *testing.T) {
	s := newTestSplitter()
	entries := []roster.Entry{{ID: "2", Surname: "Шевченко", Firstname: "Тарас"}}

	got := s.Split("ШевченкоТарас", entries)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Quality)
	assert.False(t, got[0].FirstnameFirst)
}

func TestCombinedSplitter_Breakpoint(t *testing.T) {
	s := newTestSplitter()
	entries := []roster.Entry{
		{ID: "3", Surname: "Коваль", Firstname: "Маргарита"},
		{ID: "4", Surname: "Петренко", Firstname: "Іван"},
	}

	got := s.Split("ritakoval", entries)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Entry.ID)
	assert.True(t, got[0].Breakpoint)
	assert.True(t, got[0].FirstnameFirst)
	assert.GreaterOrEqual(t, got[0].Quality, 0.7)
	assert.LessOrEqual(t, got[0].Quality, 0.85)
}

func TestCombinedSplitter_NotApplicable(t *testing.T) {
	s := newTestSplitter()
	entries := []roster.Entry{{ID: "3", Surname: "Коваль", Firstname: "Маргарита"}}

	assert.Nil(t, s.Split("koval", entries), "shorter than the minimum length")
	assert.Nil(t, s.Split("margarita koval", entries), "more than one token")
	assert.Empty(t, s.Split("zzzzzzzzzz", entries))
	assert.Empty(t, s.Split("margaritakoval", nil))
}

func TestLongestSuffixIn(t *testing.T) {
	piece, pos := longestSuffixIn("ritakoval", "margarita", 3)
	assert.Equal(t, "rita", piece)
	assert.Equal(t, 0, pos)

	_, pos = longestSuffixIn("ritakoval", "petrenko", 3)
	assert.Equal(t, -1, pos)
}
