package names

import (
	"roster-reconciler/internal/match"
	"roster-reconciler/internal/memo"
	"roster-reconciler/internal/translit"
)

// Kind classifies how two name parts relate.
type Kind int

const (
	// KindNone means the parts are unrelated.
	KindNone Kind = iota
	// KindExact means case-insensitive equality.
	KindExact
	// KindTranslit means the parts match across scripts.
	KindTranslit
	// KindVariant means one part is a diminutive or variant of the other.
	KindVariant
	// KindFuzzy means same-script edit-distance similarity above threshold.
	KindFuzzy
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindTranslit:
		return "translit"
	case KindVariant:
		return "variant"
	case KindFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Verdict is the result of comparing two name parts.
type Verdict struct {
	Kind Kind
	// Quality is the confidence in [0, 1].
	Quality float64
	// Similarity is the raw string similarity behind a translit or fuzzy
	// verdict; 1 for exact and variant verdicts.
	Similarity float64
}

// Found reports whether the verdict relates the parts at all.
func (v Verdict) Found() bool {
	return v.Kind != KindNone
}

// EvaluatorConfig holds the thresholds and quality constants of Evaluate.
// Thresholds are maximum dissimilarities, as in match.FuzzyMatch.
type EvaluatorConfig struct {
	TranslitMaxDissimilarity float64 `yaml:"translit_max_dissimilarity"`
	FuzzyMaxDissimilarity    float64 `yaml:"fuzzy_max_dissimilarity"`
	TranslitQuality          float64 `yaml:"translit_quality"`
	VariantQuality           float64 `yaml:"variant_quality"`
	FuzzyQuality             float64 `yaml:"fuzzy_quality"`
}

// DefaultEvaluatorConfig returns the default evaluation constants.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		TranslitMaxDissimilarity: 0.2,
		FuzzyMaxDissimilarity:    0.25,
		TranslitQuality:          0.85,
		VariantQuality:           0.88,
		FuzzyQuality:             0.8,
	}
}

// Evaluator compares name parts. Verdicts are memoized per normalized pair.
type Evaluator struct {
	cfg   EvaluatorConfig
	tr    *translit.Transliterator
	dict  *Dictionary
	cache *memo.Table[memo.Pair, Verdict]
}

// NewEvaluator creates an Evaluator. A nil dictionary means DefaultDictionary.
func NewEvaluator(cfg EvaluatorConfig, tr *translit.Transliterator, dict *Dictionary, cacheSize int) *Evaluator {
	if dict == nil {
		dict = DefaultDictionary()
	}

	return &Evaluator{
		cfg:   cfg,
		tr:    tr,
		dict:  dict,
		cache: memo.New[memo.Pair, Verdict](cacheSize),
	}
}

// Evaluate compares a and b. The first rule that fires wins:
//  1. exact case-insensitive equality (quality 1)
//  2. different scripts matching through transliteration (TranslitQuality x similarity)
//  3. diminutive or variant relation in either direction (VariantQuality)
//  4. same-script similarity within FuzzyMaxDissimilarity (FuzzyQuality x similarity)
func (e *Evaluator) Evaluate(a, b string) Verdict {
	na, nb := match.NormalizeName(a), match.NormalizeName(b)
	if na > nb {
		na, nb = nb, na
	}

	return e.cache.Get(memo.Pair{A: na, B: nb}, func() Verdict {
		return e.evaluate(na, nb)
	})
}

func (e *Evaluator) evaluate(a, b string) Verdict {
	if a == "" || b == "" {
		return Verdict{}
	}

	if a == b {
		return Verdict{Kind: KindExact, Quality: 1, Similarity: 1}
	}

	sameScript := translit.HasCyrillic(a) == translit.HasCyrillic(b)

	if !sameScript {
		sim := e.tr.CrossScriptSimilarity(a, b)
		if sim >= 1-e.cfg.TranslitMaxDissimilarity-1e-9 {
			return Verdict{Kind: KindTranslit, Quality: e.cfg.TranslitQuality * sim, Similarity: sim}
		}
	}

	if e.dict.Related(e.cyrillic(a), e.cyrillic(b)) {
		return Verdict{Kind: KindVariant, Quality: e.cfg.VariantQuality, Similarity: 1}
	}

	if sameScript {
		sim := match.Similarity(a, b)
		if match.FuzzyMatch(a, b, e.cfg.FuzzyMaxDissimilarity) {
			return Verdict{Kind: KindFuzzy, Quality: e.cfg.FuzzyQuality * sim, Similarity: sim}
		}
	}

	return Verdict{}
}

// cyrillic returns s in Cyrillic script, the script of the variant dictionary.
func (e *Evaluator) cyrillic(s string) string {
	if translit.HasCyrillic(s) {
		return s
	}

	return e.tr.ToCyrillic(s)
}

// Reset drops memoized verdicts.
func (e *Evaluator) Reset() {
	e.cache.Reset()
}
