package reconcile

import (
	"fmt"

	"roster-reconciler/internal/diagnostic"
	"roster-reconciler/internal/match"
	"roster-reconciler/internal/names"
	"roster-reconciler/internal/roster"
)

// autoMatch takes a second look at unresolved and ambiguous records, in
// input order. Every acceptance is added to the returned UsedIDs, so later
// names only see entries nobody holds yet.
func (e *Engine) autoMatch(
	order []string,
	records map[string]MatchRecord,
	used UsedIDs,
	sc *StrategyContext,
	diags *diagnostic.Diagnostics,
) UsedIDs {
	for _, name := range order {
		if records[name].Matched() {
			continue
		}

		cand, reason, ok := e.autoMatchOne(name, used, sc)
		if !ok {
			continue
		}

		records[name] = matchedRecord(cand)
		used = used.With(cand.ID)

		diags.AddInfo(diagnostic.CodeAutoMatched,
			fmt.Sprintf("auto-matched to %s (%s, quality %.2f)", cand.DBName, reason, cand.Quality), name)

		e.log.Debug().
			Str("name", name).
			Str("id", cand.ID).
			Str("type", cand.Type.String()).
			Float64("quality", cand.Quality).
			Msg("auto-matched")
	}

	return used
}

// autoMatchOne decides a single name against the entries nobody holds. It
// never looks at other records, which keeps the fold order explicit.
func (e *Engine) autoMatchOne(name string, used UsedIDs, sc *StrategyContext) (match.Candidate, string, bool) {
	parts := names.Split(name)
	if parts.Empty() {
		return match.Candidate{}, "", false
	}

	entries := unusedEntries(sc.Index, used)
	if len(entries) == 0 {
		return match.Candidate{}, "", false
	}

	if parts.Single {
		hits := entriesWithWord(entries, parts.Word)
		switch len(hits) {
		case 0:
		case 1:
			c := candidateOf(hits[0], match.AutoMatchSingleWord, sc.Weights.Of(match.AutoMatchSingleWord), false)
			return c, "single word", true
		default:
			// Several people share the word; leave it to the user.
			return match.Candidate{}, "", false
		}
	}

	if e.splitter.Applies(name) {
		if split := e.splitter.Split(name, entries); len(split) > 0 {
			best := split[0]
			if best.Quality > e.cfg.CombinedAutoMinQuality {
				t := match.SplitName
				if best.Breakpoint {
					t = match.SplitNameBreakpoint
				}

				c := candidateOf(best.Entry, t, sc.Weights.Of(t)*best.Quality, best.FirstnameFirst)
				return c, "concatenated name", true
			}
		}
	}

	// Scored against the whole roster so the evaluator memo is shared with
	// the pipeline; taken IDs drop out before the confidence check.
	cands := nameCandidates(name, sc.Index.Entries(), sc.Evaluator, sc.Weights).Without(used.Has)
	best := cands.HighConfidence(e.cfg.AutoMatchMinQuality, e.cfg.AutoMatchMinGap)
	if best == nil {
		return match.Candidate{}, "", false
	}

	c := *best
	reason := c.Type.String()
	c.Type = match.AutoMatch

	return c, reason, true
}

// entriesWithWord returns entries whose firstname equals word, or failing
// that whose surname does.
func entriesWithWord(entries []roster.Entry, word string) []roster.Entry {
	var byFirstname, bySurname []roster.Entry

	for _, e := range entries {
		if match.NormalizeName(e.Firstname) == word {
			byFirstname = append(byFirstname, e)
		}
		if match.NormalizeName(e.Surname) == word {
			bySurname = append(bySurname, e)
		}
	}

	if len(byFirstname) > 0 {
		return byFirstname
	}

	return bySurname
}

func unusedEntries(idx *roster.Index, used UsedIDs) []roster.Entry {
	all := idx.Entries()
	out := make([]roster.Entry, 0, len(all))

	for _, e := range all {
		if !used.Has(e.ID) {
			out = append(out, e)
		}
	}

	return out
}
