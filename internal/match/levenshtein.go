package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// EditDistance computes the Levenshtein distance (edit distance) between two strings.
// Insertions, deletions and substitutions cost one each and are counted per rune,
// so Cyrillic letters weigh the same as Latin ones. EditDistance("", x) is the
// rune length of x. The comparison is case-sensitive.
func EditDistance(a, b string) int {
	if a == b {
		return 0
	}

	return levenshtein.ComputeDistance(a, b)
}

// Similarity computes a normalized, case-insensitive similarity score between 0 and 1.
// 1.0 means equal strings, 0.0 means completely different or that one side is empty.
// The score is: 1 - (distance / max(len(a), len(b))) with lengths in runes.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}

	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0.0
	}

	maxLen := max(la, lb)

	return 1.0 - float64(EditDistance(a, b))/float64(maxLen)
}

// FuzzyMatch reports whether a and b are similar enough.
//
// maxDissimilarity is the largest tolerated dissimilarity, not a minimum similarity:
// the match succeeds when Similarity(a, b) >= 1 - maxDissimilarity. A value of 0.2
// therefore accepts pairs that are at least 80% similar.
func FuzzyMatch(a, b string, maxDissimilarity float64) bool {
	return Similarity(a, b) >= 1.0-maxDissimilarity-scoreEpsilon
}

// scoreEpsilon absorbs float rounding when a ratio lands exactly on a threshold.
const scoreEpsilon = 1e-9
