package reconcile

import (
	"sort"
	"strconv"
	"strings"

	"roster-reconciler/internal/match"
	"roster-reconciler/internal/roster"
)

// Recommendations suggests up to RecommendationLimit roster entries for each
// unresolved name, skipping IDs already present in matched. Names that the
// last run left with alternatives get those alternatives; other names are
// compared afresh against every free entry.
//
// Results are memoized by the unresolved names, the roster fingerprint, the
// set of used IDs, and the run that produced the alternatives.
func (e *Engine) Recommendations(
	unresolved []string,
	entries []roster.Entry,
	matched map[string]string,
) map[string][]Recommendation {
	idx := e.indexFor(entries)

	used := make(UsedIDs, len(matched))
	for _, id := range matched {
		if id != "" && id != Unresolved {
			used[id] = true
		}
	}

	last, run := e.lastRun(idx.Fingerprint())
	key := recommendationKey(unresolved, idx.Fingerprint(), used, run)

	recs := e.recs.Get(key, func() map[string][]Recommendation {
		out := make(map[string][]Recommendation, len(unresolved))
		for _, name := range unresolved {
			var attached []Alternative
			if last != nil {
				attached = last.MatchInfo[name].Alternatives
			}
			out[name] = toRecommendations(e.alternatives(name, attached, idx, used))
		}
		return out
	})

	hits, misses := e.recs.Stats()
	e.log.Debug().
		Int("names", len(unresolved)).
		Uint64("cache_hits", hits).
		Uint64("cache_misses", misses).
		Msg("recommendations ready")

	return cloneRecommendations(recs)
}

// alternatives keeps the free attached alternatives, or computes fresh
// suggestions when none are left. Either way at most RecommendationLimit are
// returned.
func (e *Engine) alternatives(name string, attached []Alternative, idx *roster.Index, used UsedIDs) []Alternative {
	if out := free(attached, used); len(out) > 0 {
		if n := e.cfg.RecommendationLimit; n > 0 && len(out) > n {
			out = out[:n]
		}
		return out
	}

	return alternativesOf(e.suggest(name, idx, used).Top(e.cfg.RecommendationLimit))
}

// free drops alternatives whose ID is taken, keeping order.
func free(attached []Alternative, used UsedIDs) []Alternative {
	var out []Alternative
	for _, alt := range attached {
		if !used.Has(alt.ID) {
			out = append(out, alt)
		}
	}

	return out
}

// suggest scores name against every free entry. Each entry gets the better
// of its name-parts quality and the similarity of the whole name to the
// entry's full name in either order.
func (e *Engine) suggest(name string, idx *roster.Index, used UsedIDs) match.CandidateList {
	entries := unusedEntries(idx, used)
	if len(entries) == 0 || match.NormalizeName(name) == "" {
		return nil
	}

	cands := nameCandidates(name, entries, e.ev, e.weights)
	for _, entry := range entries {
		sim := max(
			e.tr.CrossScriptSimilarity(name, entry.FullName()),
			e.tr.CrossScriptSimilarity(name, entry.ReversedName()),
		)
		cands = append(cands, candidateOf(entry, match.NotFound, roundQuality(100*sim), false))
	}

	return cands.Rank().UniqueByID().AboveThreshold(e.cfg.RecommendationMinQuality)
}

func toRecommendations(alts []Alternative) []Recommendation {
	out := make([]Recommendation, len(alts))
	for i, a := range alts {
		out[i] = Recommendation{ID: a.ID, DBName: a.DBName, Similarity: a.Quality}
	}

	return out
}

func cloneRecommendations(in map[string][]Recommendation) map[string][]Recommendation {
	out := make(map[string][]Recommendation, len(in))
	for k, v := range in {
		out[k] = append([]Recommendation(nil), v...)
	}

	return out
}

func recommendationKey(unresolved []string, fingerprint string, used UsedIDs, run uint64) string {
	namesKey := append([]string(nil), unresolved...)
	sort.Strings(namesKey)

	ids := make([]string, 0, len(used))
	for id := range used {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(fingerprint)
	b.WriteByte(0)
	b.WriteString(strconv.FormatUint(run, 10))
	b.WriteByte(0)
	b.WriteString(strings.Join(namesKey, "\x1f"))
	b.WriteByte(0)
	b.WriteString(strings.Join(ids, "\x1f"))

	return b.String()
}
