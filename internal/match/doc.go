// Package match provides the string-level building blocks of name reconciliation:
// edit distance and similarity, name normalization, the closed set of match types,
// and candidate ranking.
//
// Key functions:
//   - EditDistance: rune-wise Levenshtein distance
//   - Similarity: case-insensitive normalized similarity in [0, 1]
//   - FuzzyMatch: similarity test against a maximum allowed dissimilarity
//   - NormalizeName: canonical lowercase form used for every comparison key
//   - CandidateList: ranking, ambiguity and high-confidence selection
package match
