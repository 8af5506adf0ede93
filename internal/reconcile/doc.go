// Package reconcile matches display names against a roster.
//
// An Engine runs every display name through an ordered list of strategies
// (manual assignment, exact full name, alias tag, unique surname or
// firstname, nickname, name parts). The first strategy that accepts decides
// the record. A uniqueness pass then makes sure no roster identity is held by
// two automatic matches, and an auto-matcher takes a second, stricter look at
// whatever is still unresolved or ambiguous.
//
// Every run is deterministic: the same names, aliases, manual assignments,
// and roster always produce the same result.
package reconcile
