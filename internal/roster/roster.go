// Package roster holds the authoritative identity records that display names
// are reconciled against, plus the lookup index the reconciler builds per run.
package roster

import (
	"strings"
)

// Entry is one known identity. ID is opaque to the reconciler; callers
// guarantee its uniqueness within a roster.
type Entry struct {
	ID        string   `yaml:"id" json:"id"`
	Surname   string   `yaml:"surname" json:"surname"`
	Firstname string   `yaml:"firstname" json:"firstname"`
	Nicknames []string `yaml:"nicknames,omitempty" json:"nicknames,omitempty"`
}

// FullName returns "Surname Firstname", the roster's canonical display form.
func (e Entry) FullName() string {
	return strings.TrimSpace(e.Surname + " " + e.Firstname)
}

// ReversedName returns "Firstname Surname".
func (e Entry) ReversedName() string {
	return strings.TrimSpace(e.Firstname + " " + e.Surname)
}
