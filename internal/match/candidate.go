package match

import (
	"sort"
)

// Candidate represents a potential roster entry for a display name.
type Candidate struct {
	// ID of the roster entry.
	ID string
	// DBName is the roster full name ("Surname Firstname") for display.
	DBName string
	// Type tags the rule that produced the candidate.
	Type MatchType
	// Quality is the ranking score on the 0-100 scale (higher is better).
	Quality float64
	// Reversed is true when the candidate came from the surname-last reading.
	Reversed bool
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank sorts the list in place by quality (descending) and returns it.
func (c CandidateList) Rank() CandidateList {
	sort.Stable(c)
	return c
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by quality descending, then by roster name and ID for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Quality != c[j].Quality {
		return c[i].Quality > c[j].Quality
	}

	if c[i].DBName != c[j].DBName {
		return c[i].DBName < c[j].DBName
	}

	return c[i].ID < c[j].ID
}

// Top returns the top n candidates. n <= 0 keeps them all.
func (c CandidateList) Top(n int) CandidateList {
	if n <= 0 || n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the margin.
// An exact tie is always ambiguous, even with a zero margin.
func (c CandidateList) IsAmbiguous(margin float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Quality - c[1].Quality
	return diff < margin || diff == 0
}

// AboveThreshold returns candidates with quality at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Quality >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Without returns the candidates whose ID is not excluded, keeping order.
func (c CandidateList) Without(excluded func(id string) bool) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if !excluded(cand.ID) {
			result = append(result, cand)
		}
	}
	return result
}

// UniqueByID keeps the first occurrence of each ID. On a ranked list that is
// the best-scoring candidate per roster entry.
func (c CandidateList) UniqueByID() CandidateList {
	seen := make(map[string]bool, len(c))

	var result CandidateList
	for _, cand := range c {
		if seen[cand.ID] {
			continue
		}
		seen[cand.ID] = true
		result = append(result, cand)
	}
	return result
}

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	if len(c) == 0 {
		return nil
	}
	best := &c[0]

	// Must meet minimum score threshold
	if best.Quality < minScore {
		return nil
	}

	// If there's a second candidate, must have sufficient gap
	if len(c) > 1 {
		gap := c[0].Quality - c[1].Quality
		if gap < minGap {
			return nil
		}
	}

	return best
}

// Confidence thresholds for ranking and auto-accepting matches (0-100 scale).
const (
	// DefaultAmbiguityMargin is the quality difference under which the top two
	// name-parts candidates are treated as a tie.
	DefaultAmbiguityMargin = 5.0
	// DefaultAutoMatchMinQuality is the minimum quality for auto-acceptance.
	DefaultAutoMatchMinQuality = 85.0
	// DefaultAutoMatchMinGap is the minimum lead over the runner-up for auto-acceptance.
	DefaultAutoMatchMinGap = 10.0
)
