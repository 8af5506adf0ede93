package roster

import (
	"hash"
	"hash/fnv"
	"strconv"

	"roster-reconciler/internal/match"
)

// Index is a read-only lookup structure over a roster snapshot. All keys are
// normalized with match.NormalizeName; lookups return entries in roster order.
type Index struct {
	entries     []Entry
	byID        map[string]int
	byFullName  map[string][]int
	bySurname   map[string][]int
	byFirstname map[string][]int
	byNickname  map[string][]int
	fingerprint string
}

// NewIndex builds an index over entries. The slice is copied; the caller's
// entries are never modified.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries:     append([]Entry(nil), entries...),
		byID:        make(map[string]int, len(entries)),
		byFullName:  make(map[string][]int, len(entries)),
		bySurname:   make(map[string][]int, len(entries)),
		byFirstname: make(map[string][]int, len(entries)),
		byNickname:  make(map[string][]int),
	}

	h := fnv.New64a()

	for i, e := range idx.entries {
		if _, dup := idx.byID[e.ID]; !dup {
			idx.byID[e.ID] = i
		}

		addKey(idx.byFullName, e.FullName(), i)
		addKey(idx.bySurname, e.Surname, i)
		addKey(idx.byFirstname, e.Firstname, i)

		for _, nick := range e.Nicknames {
			addKey(idx.byNickname, nick, i)
		}

		writeField(h, e.ID)
		writeField(h, e.Surname)
		writeField(h, e.Firstname)

		for _, nick := range e.Nicknames {
			writeField(h, nick)
		}

		writeField(h, "\x00")
	}

	idx.fingerprint = strconv.FormatUint(h.Sum64(), 16)

	return idx
}

func addKey(m map[string][]int, raw string, i int) {
	key := match.NormalizeName(raw)
	if key == "" {
		return
	}

	for _, existing := range m[key] {
		if existing == i {
			return
		}
	}

	m[key] = append(m[key], i)
}

func writeField(h hash.Hash64, s string) {
	_, _ = h.Write([]byte(s))
	_, _ = h.Write([]byte{0x1f})
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns the indexed entries in roster order.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

// Fingerprint identifies the roster snapshot; equal rosters yield equal fingerprints.
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// ByID returns the entry with the given ID.
func (idx *Index) ByID(id string) (Entry, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return Entry{}, false
	}

	return idx.entries[i], true
}

// WithFullName returns entries whose "Surname Firstname" equals name.
func (idx *Index) WithFullName(name string) []Entry {
	return idx.lookup(idx.byFullName, name)
}

// WithSurname returns entries whose surname equals s, case-insensitively.
func (idx *Index) WithSurname(s string) []Entry {
	return idx.lookup(idx.bySurname, s)
}

// WithFirstname returns entries whose firstname equals f, case-insensitively.
func (idx *Index) WithFirstname(f string) []Entry {
	return idx.lookup(idx.byFirstname, f)
}

// WithNickname returns entries that declare nick among their nicknames.
func (idx *Index) WithNickname(nick string) []Entry {
	return idx.lookup(idx.byNickname, nick)
}

func (idx *Index) lookup(m map[string][]int, raw string) []Entry {
	positions := m[match.NormalizeName(raw)]
	if len(positions) == 0 {
		return nil
	}

	out := make([]Entry, len(positions))
	for i, p := range positions {
		out[i] = idx.entries[p]
	}

	return out
}
