package match

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=MatchType -linecomment -output=matchtype_string.go

// MatchType tags how a display name was tied to a roster entry. The set is closed:
// every verdict the reconciler produces carries one of the constants below.
type MatchType int

const (
	NotFound MatchType = iota // not-found

	Manual          // manual
	Exact           // exact-match
	AliasTag        // alias-tag
	UniqueSurname   // unique-surname
	UniqueFirstname // unique-firstname
	Nickname        // nickname

	StandardOrderExact         // standard-order-exact
	StandardOrderVariant       // standard-order-variant
	StandardOrderTranslit      // standard-order-translit
	SurnameExactFirstnameFuzzy // surname-exact-firstname-fuzzy
	StandardOrderFuzzy         // standard-order-fuzzy

	ReversedOrderExact                 // reversed-order-exact
	ReversedOrderVariant               // reversed-order-variant
	ReversedOrderTranslit              // reversed-order-translit
	ReversedSurnameExactFirstnameFuzzy // reversed-surname-exact-firstname-fuzzy
	ReversedOrderFuzzy                 // reversed-order-fuzzy

	SurnameOnlyExact    // surname-only-exact
	SurnameOnlyVariant  // surname-only-variant
	SurnameOnlyTranslit // surname-only-translit
	SurnameOnlyFuzzy    // surname-only-fuzzy

	FirstnameOnlyExact    // firstname-only-exact
	FirstnameOnlyVariant  // firstname-only-variant
	FirstnameOnlyTranslit // firstname-only-translit
	FirstnameOnlyFuzzy    // firstname-only-fuzzy

	SplitName           // split-name
	SplitNameBreakpoint // split-name-breakpoint

	AutoMatchSingleWord // auto-match-single-word
	AutoMatch           // auto-match

	Ambiguous // ambiguous
	Conflict  // conflict

	// matchTypeCount is the number of match types defined above.
	matchTypeCount = int(iota)
)

// defaultWeights is the central quality table (0-100) for every type that
// can be accepted automatically. A name-parts candidate scores its type's
// weight scaled by how closely its parts matched within that type.
var defaultWeights = map[MatchType]float64{
	Manual:          100,
	Exact:           100,
	AliasTag:        99,
	UniqueSurname:   98,
	UniqueFirstname: 97,
	Nickname:        96,

	StandardOrderExact:         95,
	StandardOrderVariant:       90,
	StandardOrderTranslit:      88,
	SurnameExactFirstnameFuzzy: 84,
	StandardOrderFuzzy:         76,

	ReversedOrderExact:                 92,
	ReversedOrderVariant:               87,
	ReversedOrderTranslit:              85,
	ReversedSurnameExactFirstnameFuzzy: 81,
	ReversedOrderFuzzy:                 73,

	SurnameOnlyExact:    75,
	SurnameOnlyVariant:  68,
	SurnameOnlyTranslit: 70,
	SurnameOnlyFuzzy:    58,

	FirstnameOnlyExact:    70,
	FirstnameOnlyVariant:  66,
	FirstnameOnlyTranslit: 65,
	FirstnameOnlyFuzzy:    55,

	SplitName:           90,
	SplitNameBreakpoint: 80,
	AutoMatchSingleWord: 95,
	AutoMatch:           85,
}

// Weights maps match types to their quality ceilings.
type Weights map[MatchType]float64

// DefaultWeights returns a copy of the central quality table.
func DefaultWeights() Weights {
	w := make(Weights, len(defaultWeights))
	for k, v := range defaultWeights {
		w[k] = v
	}

	return w
}

// Of returns the weight of t, falling back to the central table.
func (w Weights) Of(t MatchType) float64 {
	if v, ok := w[t]; ok {
		return v
	}

	return defaultWeights[t]
}

// Reversed reports whether the type was derived from the surname-last reading of a name.
func (t MatchType) Reversed() bool {
	switch t {
	case ReversedOrderExact, ReversedOrderVariant, ReversedOrderTranslit,
		ReversedSurnameExactFirstnameFuzzy, ReversedOrderFuzzy:
		return true
	default:
		return false
	}
}

// Valid reports whether t is one of the declared constants.
func (t MatchType) Valid() bool {
	return t >= 0 && int(t) < matchTypeCount
}

// ParseMatchType converts the tag produced by String back to a MatchType.
func ParseMatchType(s string) (MatchType, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for i := 0; i < matchTypeCount; i++ {
		if t := MatchType(i); t.String() == s {
			return t, nil
		}
	}

	return NotFound, fmt.Errorf("unknown match type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t MatchType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid match type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *MatchType) UnmarshalText(text []byte) error {
	parsed, err := ParseMatchType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
