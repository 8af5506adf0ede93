package reconcile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-reconciler/internal/roster"
)

func TestRecommendations_AttachedAlternatives(t *testing.T) {
	entries := []roster.Entry{kovalOleksandr, petrenkoOleksandr}

	e := New(DefaultConfig())
	res := e.Reconcile([]string{"Олександр"}, nil, entries)

	recs := e.Recommendations(res.UnresolvedNames, entries, res.MatchedNames)
	require.Len(t, recs["Олександр"], 2)
	assert.Equal(t, "1", recs["Олександр"][0].ID)
	assert.Equal(t, "Коваль Олександр", recs["Олександр"][0].DBName)
	assert.InDelta(t, 70, recs["Олександр"][0].Similarity, 0.001)

	matched := map[string]string{"Коваль Олександр": "1", "Олександр": Unresolved}
	recs = e.Recommendations([]string{"Олександр"}, entries, matched)
	require.Len(t, recs["Олександр"], 1)
	assert.Equal(t, "2", recs["Олександр"][0].ID)
}

func TestRecommendations_Fresh(t *testing.T) {
	entries := []roster.Entry{kovalOleksandr, petrenkoOleksandr}

	e := New(DefaultConfig())
	recs := e.Recommendations([]string{"Ковальчук Олександр"}, entries, nil)

	got := recs["Ковальчук Олександр"]
	require.NotEmpty(t, got)
	assert.Equal(t, "1", got[0].ID)
	assert.Greater(t, got[0].Similarity, 80.0)

	for _, r := range got {
		assert.GreaterOrEqual(t, r.Similarity, 50.0)
	}
}

func TestRecommendations_Limit(t *testing.T) {
	var entries []roster.Entry
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		entries = append(entries, roster.Entry{ID: id, Surname: "Бондар" + id, Firstname: "Олена"})
	}

	cfg := DefaultConfig()
	cfg.RecommendationLimit = 3

	e := New(cfg)
	recs := e.Recommendations([]string{"Бондар Олена"}, entries, nil)
	assert.Len(t, recs["Бондар Олена"], 3)
}

func TestRecommendations_LimitLeavesRecordWhole(t *testing.T) {
	var entries []roster.Entry
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		entries = append(entries, roster.Entry{ID: id, Surname: "Бондар" + id, Firstname: "Олена"})
	}

	e := New(DefaultConfig())
	res := e.Reconcile([]string{"Олена"}, nil, entries)

	rec := res.MatchInfo["Олена"]
	require.Equal(t, OutcomeAmbiguous, rec.Outcome)
	assert.Len(t, rec.Alternatives, 8)

	recs := e.Recommendations(res.UnresolvedNames, entries, res.MatchedNames)
	assert.Len(t, recs["Олена"], DefaultConfig().RecommendationLimit)

	assert.True(t, e.SelectAlternative("Олена", 7))
	assert.Equal(t, "8", e.Reconcile([]string{"Олена"}, nil, entries).MatchedNames["Олена"])
}

func TestRecommendations_ReturnsCopies(t *testing.T) {
	entries := []roster.Entry{kovalOleksandr, petrenkoOleksandr}

	e := New(DefaultConfig())
	first := e.Recommendations([]string{"Олександр"}, entries, nil)
	require.NotEmpty(t, first["Олександр"])
	first["Олександр"][0].ID = "changed"

	second := e.Recommendations([]string{"Олександр"}, entries, nil)
	assert.NotEqual(t, "changed", second["Олександр"][0].ID)
}

func TestRecommendations_LogsCacheUse(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	entries := []roster.Entry{kovalOleksandr, petrenkoOleksandr}
	e := New(DefaultConfig(), WithLogger(log))

	e.Recommendations([]string{"Олександр"}, entries, nil)
	e.Recommendations([]string{"Олександр"}, entries, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"cache_misses":1`)
	assert.Contains(t, lines[1], `"cache_hits":1`)
	assert.Contains(t, lines[1], `"message":"recommendations ready"`)
}
