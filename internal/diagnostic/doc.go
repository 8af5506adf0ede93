// Package diagnostic provides structured warnings, errors, and
// "why this matched" explanations for a reconciliation run.
//
// Key capabilities:
//   - Unresolved name warnings
//   - Ambiguous match reports with top-N candidates
//   - Roster identity conflicts between display names
//   - Explanation of automatic match decisions
package diagnostic
