package reconcile

import (
	"roster-reconciler/internal/diagnostic"
	"roster-reconciler/internal/match"
)

// Unresolved is the MatchedNames value of a display name without a match.
const Unresolved = "unresolved"

// Outcome is the state of a MatchRecord.
type Outcome int

const (
	OutcomeUnresolved Outcome = iota
	OutcomeMatched
	OutcomeAmbiguous
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "unresolved"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Alternative is a roster entry offered for an unmatched display name.
type Alternative struct {
	ID      string  `yaml:"id" json:"id"`
	DBName  string  `yaml:"db_name" json:"db_name"`
	Quality float64 `yaml:"quality" json:"quality"`
}

// MatchRecord explains how one display name was resolved.
type MatchRecord struct {
	Outcome Outcome         `yaml:"outcome" json:"outcome"`
	ID      string          `yaml:"id,omitempty" json:"id,omitempty"`
	Type    match.MatchType `yaml:"type" json:"type"`
	// Quality is on the 0-100 scale; a matched record always has Quality > 0.
	Quality float64 `yaml:"quality" json:"quality"`
	DBName  string  `yaml:"db_name,omitempty" json:"db_name,omitempty"`
	// Reversed is true when the display name puts the firstname before the
	// surname, whether as two words or glued into one token.
	Reversed bool `yaml:"reversed,omitempty" json:"reversed,omitempty"`
	// Alternatives are set on ambiguous and unresolved records.
	Alternatives []Alternative `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`
}

// Matched reports whether the record holds a roster identity.
func (r MatchRecord) Matched() bool {
	return r.Outcome == OutcomeMatched
}

func unresolvedRecord() MatchRecord {
	return MatchRecord{Outcome: OutcomeUnresolved, Type: match.NotFound}
}

func matchedRecord(c match.Candidate) MatchRecord {
	return MatchRecord{
		Outcome:  OutcomeMatched,
		ID:       c.ID,
		Type:     c.Type,
		Quality:  c.Quality,
		DBName:   c.DBName,
		Reversed: c.Reversed,
	}
}

func alternativesOf(cands match.CandidateList) []Alternative {
	if len(cands) == 0 {
		return nil
	}

	out := make([]Alternative, len(cands))
	for i, c := range cands {
		out[i] = Alternative{ID: c.ID, DBName: c.DBName, Quality: c.Quality}
	}

	return out
}

// Result is the outcome of one Reconcile call.
type Result struct {
	// MatchedNames maps every display name to a roster ID or Unresolved.
	MatchedNames map[string]string `yaml:"matched_names" json:"matched_names"`
	// MatchInfo holds exactly one record per display name.
	MatchInfo map[string]MatchRecord `yaml:"match_info" json:"match_info"`
	// UnresolvedNames lists names without a match, in input order.
	UnresolvedNames []string               `yaml:"unresolved_names" json:"unresolved_names"`
	Diagnostics     diagnostic.Diagnostics `yaml:"diagnostics" json:"diagnostics"`
}

// Recommendation is a roster entry suggested for an unresolved name.
type Recommendation struct {
	ID     string `yaml:"id" json:"id"`
	DBName string `yaml:"db_name" json:"db_name"`
	// Similarity is on the 0-100 scale.
	Similarity float64 `yaml:"similarity" json:"similarity"`
}

// UsedIDs is the set of roster IDs held by matched records.
type UsedIDs map[string]bool

// UsedIDsOf collects the IDs of matched records.
func UsedIDsOf(records map[string]MatchRecord) UsedIDs {
	used := make(UsedIDs, len(records))
	for _, rec := range records {
		if rec.Matched() {
			used[rec.ID] = true
		}
	}

	return used
}

// Has reports whether id is taken.
func (u UsedIDs) Has(id string) bool {
	return u[id]
}

// Union returns a new set holding the IDs of both sets.
func (u UsedIDs) Union(other UsedIDs) UsedIDs {
	out := make(UsedIDs, len(u)+len(other))
	for k := range u {
		out[k] = true
	}
	for k := range other {
		out[k] = true
	}

	return out
}

// With returns a copy of u that also holds id.
func (u UsedIDs) With(id string) UsedIDs {
	out := make(UsedIDs, len(u)+1)
	for k := range u {
		out[k] = true
	}
	out[id] = true

	return out
}
