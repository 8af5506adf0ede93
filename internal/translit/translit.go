// Package translit converts person names between Ukrainian Cyrillic and Latin
// script and compares names written in different scripts.
//
// Every conversion is lossy: several Latin spellings map onto one Cyrillic
// letter and back. GenerateVariants enumerates a bounded set of plausible
// spellings so that comparisons can try more than the primary one.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"roster-reconciler/internal/match"
	"roster-reconciler/internal/memo"
)

// DefaultVariantCap bounds the number of spellings GenerateVariants returns.
const DefaultVariantCap = 10

// Config controls variant generation and cache sizes.
type Config struct {
	// VariantCap is the maximum number of variants per call.
	VariantCap int
	// CacheSize is the maximum number of entries per memo table.
	CacheSize int
}

// DefaultConfig returns the default transliterator configuration.
func DefaultConfig() Config {
	return Config{
		VariantCap: DefaultVariantCap,
		CacheSize:  memo.DefaultCap,
	}
}

// Transliterator converts and compares names across scripts. All methods are
// pure and memoized by normalized input; a Transliterator is safe for
// concurrent use.
type Transliterator struct {
	variantCap int
	latin      *memo.Table[string, string]
	cyrillic   *memo.Table[string, string]
	variants   *memo.Table[variantKey, []string]
	similarity *memo.Table[memo.Pair, float64]
}

type variantKey struct {
	text string
	cap  int
}

// New creates a Transliterator.
func New(cfg Config) *Transliterator {
	if cfg.VariantCap <= 0 {
		cfg.VariantCap = DefaultVariantCap
	}

	return &Transliterator{
		variantCap: cfg.VariantCap,
		latin:      memo.New[string, string](cfg.CacheSize),
		cyrillic:   memo.New[string, string](cfg.CacheSize),
		variants:   memo.New[variantKey, []string](cfg.CacheSize),
		similarity: memo.New[memo.Pair, float64](cfg.CacheSize),
	}
}

// HasCyrillic reports whether s contains any Cyrillic code point.
func HasCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}

	return false
}

// ToLatin transliterates Cyrillic letters to Latin using the primary table.
// The result is normalized (lower case, no apostrophes); non-Cyrillic runes
// pass through.
func (t *Transliterator) ToLatin(text string) string {
	key := match.NormalizeName(text)

	return t.latin.Get(key, func() string {
		var b strings.Builder

		b.Grow(len(key))

		for _, r := range key {
			if latin, ok := latinOf[r]; ok {
				b.WriteString(latin)
				continue
			}

			b.WriteRune(r)
		}

		return b.String()
	})
}

// ToCyrillic transliterates Latin letters to Cyrillic. Multi-letter sequences
// are replaced longest first before single letters, then known artifacts such
// as "йа" are corrected. The result is normalized.
func (t *Transliterator) ToCyrillic(text string) string {
	key := match.NormalizeName(text)

	return t.cyrillic.Get(key, func() string {
		return correct(toCyrillic(key))
	})
}

func toCyrillic(s string) string {
	var b strings.Builder

	b.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		if d, ok := digraphAt(s, i); ok {
			b.WriteString(d.cyrillic)
			i += len(d.latin)

			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if cyr, ok := cyrillicOf[r]; ok {
			b.WriteString(cyr)
		} else {
			b.WriteRune(r)
		}

		i += size
	}

	return b.String()
}

func digraphAt(s string, i int) (digraph, bool) {
	for _, d := range cyrillicDigraphs {
		if strings.HasPrefix(s[i:], d.latin) {
			return d, true
		}
	}

	return digraph{}, false
}

func correct(s string) string {
	for _, pc := range postCorrections {
		s = strings.ReplaceAll(s, pc.from, pc.to)
	}

	words := strings.Split(s, " ")
	for i, w := range words {
		if strings.HasSuffix(w, "іи") {
			words[i] = strings.TrimSuffix(w, "іи") + "ій"
		}
	}

	return strings.Join(words, " ")
}

// GenerateVariants returns plausible Latin spellings of text, at most limit of
// them (the configured cap when limit <= 0). The primary transliteration is
// always first. It is followed by the common alternative scheme and then by
// spellings that change one ambiguous letter at a time. Text without Cyrillic
// letters yields itself, normalized.
func (t *Transliterator) GenerateVariants(text string, limit int) []string {
	if limit <= 0 {
		limit = t.variantCap
	}

	key := variantKey{text: match.NormalizeName(text), cap: limit}

	return t.variants.Get(key, func() []string {
		return generateVariants(key.text, limit)
	})
}

// commonScheme is the spelling found on older documents and in Russian-style
// romanization, applied to every letter at once.
var commonScheme = map[rune]string{
	'г': "g",
	'и': "i",
	'й': "i",
	'є': "ie",
	'ї': "i",
	'ю': "iu",
	'я': "ia",
}

func generateVariants(text string, limit int) []string {
	if !HasCyrillic(text) {
		return []string{text}
	}

	runes := []rune(text)
	primary := make([]string, len(runes))
	scheme := make([]string, len(runes))

	for i, r := range runes {
		p, ok := latinOf[r]
		if !ok {
			p = string(r)
		}

		primary[i] = p
		scheme[i] = p

		if alt, ok := commonScheme[r]; ok {
			scheme[i] = alt
		}
	}

	seen := make(map[string]bool)

	var out []string

	add := func(v string) bool {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}

		return len(out) < limit
	}

	if !add(strings.Join(primary, "")) || !add(strings.Join(scheme, "")) {
		return out
	}

	for i, r := range runes {
		for _, alt := range latinAlternatives[r] {
			orig := primary[i]
			primary[i] = alt
			more := add(strings.Join(primary, ""))
			primary[i] = orig

			if !more {
				return out
			}
		}
	}

	return out
}

// CrossScriptSimilarity returns the best similarity between a and b.
// Names in the same script are compared directly. Otherwise the Cyrillic side
// is expanded into its bounded variant set and each spelling is compared with
// the Latin side; the Latin side's Cyrillic reading is tried as well.
func (t *Transliterator) CrossScriptSimilarity(a, b string) float64 {
	na, nb := match.NormalizeName(a), match.NormalizeName(b)
	if na > nb {
		na, nb = nb, na
	}

	return t.similarity.Get(memo.Pair{A: na, B: nb}, func() float64 {
		ca, cb := HasCyrillic(na), HasCyrillic(nb)
		if ca == cb {
			return match.Similarity(na, nb)
		}

		cyr, lat := na, nb
		if cb {
			cyr, lat = nb, na
		}

		best := match.Similarity(t.ToCyrillic(lat), cyr)
		for _, v := range t.GenerateVariants(cyr, 0) {
			if s := match.Similarity(v, lat); s > best {
				best = s
			}
		}

		return best
	})
}

// MatchesAcrossScripts reports whether a and b match within maxDissimilarity,
// the largest tolerated dissimilarity (see match.FuzzyMatch). Same-script
// pairs are compared directly; mixed-script pairs succeed if any spelling
// variant clears the threshold.
func (t *Transliterator) MatchesAcrossScripts(a, b string, maxDissimilarity float64) bool {
	return t.CrossScriptSimilarity(a, b) >= 1.0-maxDissimilarity-1e-9
}

// Reset drops every memoized result.
func (t *Transliterator) Reset() {
	t.latin.Reset()
	t.cyrillic.Reset()
	t.variants.Reset()
	t.similarity.Reset()
}
