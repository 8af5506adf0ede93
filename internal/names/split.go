package names

import (
	"strings"

	"roster-reconciler/internal/match"
)

// NameParts is one reading of a multi-token name.
type NameParts struct {
	Surname   string
	Firstname string
}

// Parts holds every reading of a name. A single token has only Word; longer
// names always carry both the surname-first and the surname-last reading,
// because roster and transcript may disagree on order.
type Parts struct {
	Single   bool
	Word     string
	Standard NameParts
	Reversed NameParts
}

// Split splits a name into its readings. Tokens are normalized.
//
//	"Шевченко Тарас Григорович" -> Standard{шевченко, тарас григорович}
//	                               Reversed{григорович, шевченко тарас}
func Split(name string) Parts {
	tokens := match.TokenizeName(name)

	switch len(tokens) {
	case 0:
		return Parts{}
	case 1:
		return Parts{Single: true, Word: tokens[0]}
	}

	last := len(tokens) - 1

	return Parts{
		Standard: NameParts{
			Surname:   tokens[0],
			Firstname: strings.Join(tokens[1:], " "),
		},
		Reversed: NameParts{
			Surname:   tokens[last],
			Firstname: strings.Join(tokens[:last], " "),
		},
	}
}

// Empty reports whether the name had no tokens at all.
func (p Parts) Empty() bool {
	return !p.Single && p.Standard.Surname == ""
}
