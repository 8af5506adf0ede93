package names

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"roster-reconciler/internal/match"
)

//go:embed variants.yaml
var defaultVariantsYAML []byte

// Dictionary relates canonical given names to their diminutives and variant
// spellings. Keys are normalized; all lookups are case-insensitive.
type Dictionary struct {
	// variants maps a canonical name to its variant set.
	variants map[string]map[string]bool
	// canonicals maps any known form (canonical included) to its canonical names.
	canonicals map[string]map[string]bool
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		variants:   make(map[string]map[string]bool),
		canonicals: make(map[string]map[string]bool),
	}
}

// ParseDictionary parses YAML of the form "Canonical: [Variant, ...]".
func ParseDictionary(data []byte) (*Dictionary, error) {
	var raw map[string][]string

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse name variants YAML: %w", err)
	}

	d := NewDictionary()
	for canonical, variants := range raw {
		d.Add(canonical, variants...)
	}

	return d, nil
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	d, err := ParseDictionary(defaultVariantsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded name variants are invalid: %v", err))
	}

	return d
})

// DefaultDictionary returns the built-in Ukrainian given-name dictionary.
// The returned value is shared; use Clone before adding entries.
func DefaultDictionary() *Dictionary {
	return defaultDictionary()
}

// Add registers variants for a canonical name.
func (d *Dictionary) Add(canonical string, variants ...string) {
	c := match.NormalizeName(canonical)
	if c == "" {
		return
	}

	if d.variants[c] == nil {
		d.variants[c] = make(map[string]bool)
	}

	d.link(c, c)

	for _, v := range variants {
		nv := match.NormalizeName(v)
		if nv == "" || nv == c {
			continue
		}

		d.variants[c][nv] = true
		d.link(nv, c)
	}
}

func (d *Dictionary) link(form, canonical string) {
	if d.canonicals[form] == nil {
		d.canonicals[form] = make(map[string]bool)
	}

	d.canonicals[form][canonical] = true
}

// Merge adds every entry of other into d.
func (d *Dictionary) Merge(other *Dictionary) {
	if other == nil {
		return
	}

	for c, vs := range other.variants {
		d.Add(c, keys(vs)...)
	}
}

// Clone returns an independent copy of d.
func (d *Dictionary) Clone() *Dictionary {
	c := NewDictionary()
	c.Merge(d)

	return c
}

// Len returns the number of canonical names.
func (d *Dictionary) Len() int {
	return len(d.variants)
}

// Canonical returns the canonical names a form belongs to, sorted.
func (d *Dictionary) Canonical(name string) []string {
	return keys(d.canonicals[match.NormalizeName(name)])
}

// Variants returns the variants registered for a canonical name, sorted.
func (d *Dictionary) Variants(canonical string) []string {
	return keys(d.variants[match.NormalizeName(canonical)])
}

// Forms returns every other known form of name: the canonical names it
// belongs to and all of their variants, sorted.
func (d *Dictionary) Forms(name string) []string {
	set := make(map[string]bool)
	for _, c := range d.Canonical(name) {
		set[c] = true
		for _, v := range d.Variants(c) {
			set[v] = true
		}
	}

	delete(set, match.NormalizeName(name))

	return keys(set)
}

// Related reports whether a and b are different forms of the same given name:
// one is a variant of the other, in either direction, or both are variants of
// a shared canonical name.
func (d *Dictionary) Related(a, b string) bool {
	na, nb := match.NormalizeName(a), match.NormalizeName(b)
	if na == "" || nb == "" || na == nb {
		return false
	}

	for c := range d.canonicals[na] {
		if d.canonicals[nb][c] {
			return true
		}
	}

	return false
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
