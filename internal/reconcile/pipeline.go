package reconcile

import (
	"fmt"

	"roster-reconciler/internal/diagnostic"
	"roster-reconciler/internal/match"
)

// runPipeline applies strategies in order and returns the first verdict
// together with the name of the strategy that gave it.
func runPipeline(name string, strategies []Strategy, sc *StrategyContext) (MatchRecord, string) {
	for _, s := range strategies {
		if v, ok := s.Apply(name, sc); ok {
			return v.record(), s.Name
		}
	}

	return unresolvedRecord(), ""
}

// enforceUniqueness leaves at most one automatic holder per roster ID. It
// returns the IDs still held afterwards and the IDs nobody kept because of a
// quality tie.
//
// Manual records always keep their ID and take it away from automatic
// holders. Among automatic holders the highest quality wins; if the top
// quality is shared nobody keeps the ID. A second manual assignment to an ID
// is an error: the first one in input order keeps it.
func enforceUniqueness(
	order []string,
	records map[string]MatchRecord,
	diags *diagnostic.Diagnostics,
) (used, contested UsedIDs) {
	contested = make(UsedIDs)
	manualOwner := make(map[string]string)
	holders := make(map[string][]string)

	var ids []string
	for _, name := range order {
		rec := records[name]
		if !rec.Matched() {
			continue
		}

		if rec.Type == match.Manual {
			owner, seen := manualOwner[rec.ID]
			if !seen {
				manualOwner[rec.ID] = name
				continue
			}

			records[name] = conflictRecord(rec)
			diags.AddError(diagnostic.CodeManualDuplicateID,
				fmt.Sprintf("roster id %s is already manually assigned to %q", rec.ID, owner), name, rec.DBName)
			continue
		}

		if _, seen := holders[rec.ID]; !seen {
			ids = append(ids, rec.ID)
		}
		holders[rec.ID] = append(holders[rec.ID], name)
	}

	for _, id := range ids {
		contenders := holders[id]

		if owner, ok := manualOwner[id]; ok {
			for _, name := range contenders {
				demote(name, records, diags, fmt.Sprintf("roster id %s is manually assigned to %q", id, owner))
			}
			continue
		}

		if len(contenders) < 2 {
			continue
		}

		winner := topHolder(contenders, records)
		if winner == "" {
			contested[id] = true
		}

		for _, name := range contenders {
			if name == winner {
				continue
			}

			reason := fmt.Sprintf("roster id %s is claimed by several names with equal quality", id)
			if winner != "" {
				reason = fmt.Sprintf("roster id %s is held by %q with higher quality", id, winner)
			}
			demote(name, records, diags, reason)
		}
	}

	return UsedIDsOf(records), contested
}

// topHolder returns the contender with the strictly highest quality, or ""
// on a tie.
func topHolder(contenders []string, records map[string]MatchRecord) string {
	winner := ""
	best := -1.0
	tied := false

	for _, name := range contenders {
		q := records[name].Quality
		switch {
		case q > best:
			winner, best, tied = name, q, false
		case q == best:
			tied = true
		}
	}

	if tied {
		return ""
	}

	return winner
}

func demote(name string, records map[string]MatchRecord, diags *diagnostic.Diagnostics, reason string) {
	lost := records[name]
	records[name] = conflictRecord(lost)

	diags.AddWarning(diagnostic.CodeConflict, reason, name, lost.DBName)
}

// conflictRecord is the unresolved record of a name that lost its ID; the
// lost entry is kept as its only alternative.
func conflictRecord(lost MatchRecord) MatchRecord {
	return MatchRecord{
		Outcome: OutcomeUnresolved,
		Type:    match.Conflict,
		Alternatives: []Alternative{{
			ID:      lost.ID,
			DBName:  lost.DBName,
			Quality: lost.Quality,
		}},
	}
}
