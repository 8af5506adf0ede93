package names

import (
	"sort"
	"strings"

	"roster-reconciler/internal/match"
	"roster-reconciler/internal/roster"
	"roster-reconciler/internal/translit"
)

// SplitCandidate is a roster entry whose surname and firstname were found
// glued together inside a single token.
type SplitCandidate struct {
	Entry roster.Entry
	// Quality is the confidence in [0, 1].
	Quality float64
	// Breakpoint is true for the lower-confidence substring scan.
	Breakpoint bool
	// FirstnameFirst is true when the token reads firstname+surname.
	FirstnameFirst bool
}

// CombinedConfig controls CombinedSplitter.
type CombinedConfig struct {
	// MinLength is the minimum token length in runes.
	MinLength int `yaml:"min_length"`
	// MinQuality is the exclusive floor for whole-concatenation candidates.
	MinQuality float64 `yaml:"min_quality"`
	// MinPieceLength is the shortest name suffix the breakpoint scan accepts.
	MinPieceLength int `yaml:"min_piece_length"`
}

// DefaultCombinedConfig returns the default splitter configuration.
func DefaultCombinedConfig() CombinedConfig {
	return CombinedConfig{
		MinLength:      6,
		MinQuality:     0.8,
		MinPieceLength: 3,
	}
}

// Breakpoint candidates score between these bounds, scaled by how much of
// the token the two pieces cover.
const (
	breakpointFloor = 0.70
	breakpointSpan  = 0.15
)

// CombinedSplitter finds roster entries inside concatenated tokens such as
// "margaritakoval".
type CombinedSplitter struct {
	cfg CombinedConfig
	tr  *translit.Transliterator
}

// NewCombinedSplitter creates a splitter.
func NewCombinedSplitter(cfg CombinedConfig, tr *translit.Transliterator) *CombinedSplitter {
	return &CombinedSplitter{cfg: cfg, tr: tr}
}

// Applies reports whether token is a single token long enough to split.
func (s *CombinedSplitter) Applies(token string) bool {
	parts := match.TokenizeName(token)
	return len(parts) == 1 && len([]rune(parts[0])) >= s.cfg.MinLength
}

// Split scores token against every entry. Each entry is tried as
// surname+firstname and firstname+surname; matches above MinQuality are
// kept. Entries that miss are tried with the breakpoint scan. The result is
// deduplicated by ID and sorted by quality, best first.
func (s *CombinedSplitter) Split(token string, entries []roster.Entry) []SplitCandidate {
	if !s.Applies(token) {
		return nil
	}

	tok := match.CompactName(token)
	best := make(map[string]SplitCandidate)

	for _, e := range entries {
		sur, first := match.CompactName(e.Surname), match.CompactName(e.Firstname)
		if sur == "" || first == "" {
			continue
		}

		cand, ok := s.concatenation(tok, sur, first)
		if !ok {
			cand, ok = s.breakpoint(tok, sur, first)
		}

		if !ok {
			continue
		}

		cand.Entry = e
		if prev, seen := best[e.ID]; !seen || cand.Quality > prev.Quality {
			best[e.ID] = cand
		}
	}

	out := make([]SplitCandidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Quality != out[j].Quality {
			return out[i].Quality > out[j].Quality
		}
		return out[i].Entry.ID < out[j].Entry.ID
	})

	return out
}

func (s *CombinedSplitter) concatenation(tok, sur, first string) (SplitCandidate, bool) {
	surFirst := s.tr.CrossScriptSimilarity(tok, sur+first)
	firstSur := s.tr.CrossScriptSimilarity(tok, first+sur)

	cand := SplitCandidate{Quality: surFirst}
	if firstSur > surFirst {
		cand = SplitCandidate{Quality: firstSur, FirstnameFirst: true}
	}

	return cand, cand.Quality > s.cfg.MinQuality
}

// breakpoint looks for the longest suffix of the surname and of the
// firstname that occur in the token. The two pieces must not overlap.
func (s *CombinedSplitter) breakpoint(tok, sur, first string) (SplitCandidate, bool) {
	var (
		best  SplitCandidate
		found bool
	)

	tokLen := float64(len([]rune(tok)))

	for _, sv := range s.spellings(tok, sur) {
		for _, fv := range s.spellings(tok, first) {
			sPiece, sPos := longestSuffixIn(tok, sv, s.cfg.MinPieceLength)
			fPiece, fPos := longestSuffixIn(tok, fv, s.cfg.MinPieceLength)

			if sPos < 0 || fPos < 0 {
				continue
			}

			sEnd, fEnd := sPos+len(sPiece), fPos+len(fPiece)
			if sEnd > fPos && fEnd > sPos {
				continue
			}

			covered := float64(len([]rune(sPiece)) + len([]rune(fPiece)))
			q := breakpointFloor + breakpointSpan*min(1, covered/tokLen)

			if !found || q > best.Quality {
				best = SplitCandidate{Quality: q, Breakpoint: true, FirstnameFirst: fPos < sPos}
				found = true
			}
		}
	}

	return best, found
}

// spellings returns the forms of part written in the token's script.
func (s *CombinedSplitter) spellings(tok, part string) []string {
	tokCyr, partCyr := translit.HasCyrillic(tok), translit.HasCyrillic(part)

	switch {
	case tokCyr == partCyr:
		return []string{part}
	case tokCyr:
		return []string{s.tr.ToCyrillic(part)}
	default:
		return s.tr.GenerateVariants(part, 3)
	}
}

// longestSuffixIn returns the longest suffix of part, at least minLen runes,
// that occurs in tok, with its byte position in tok; -1 when none does.
func longestSuffixIn(tok, part string, minLen int) (string, int) {
	runes := []rune(part)

	for start := 0; len(runes)-start >= minLen; start++ {
		suffix := string(runes[start:])
		if pos := strings.Index(tok, suffix); pos >= 0 {
			return suffix, pos
		}
	}

	return "", -1
}
