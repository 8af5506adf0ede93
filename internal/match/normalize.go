package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName normalizes a person name for comparison.
// The normalization pipeline:
// 1. Compose to NFC so that "й" typed as "и"+breve equals the precomposed letter.
// 2. Lower-case with Ukrainian casing rules.
// 3. Drop apostrophes (Ukrainian "ʼ", typographic and ASCII variants).
// 4. Treat separators (_, ., ,) as spaces and collapse runs of whitespace.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = cases.Lower(language.Ukrainian).String(s)

	var b strings.Builder

	b.Grow(len(s))

	pendingSpace := false

	for _, r := range s {
		switch {
		case isApostrophe(r):
			continue
		case isSeparator(r) || unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
			continue
		}

		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}

		b.WriteRune(r)
	}

	return b.String()
}

// TokenizeName splits a name into normalized tokens.
// Examples:
//   - "Шевченко  Тарас" -> ["шевченко", "тарас"]
//   - "taras_shevchenko" -> ["taras", "shevchenko"]
//   - "Марʼяна" -> ["маряна"]
func TokenizeName(s string) []string {
	return strings.Fields(NormalizeName(s))
}

// CompactName returns the normalized name with all spaces removed. Concatenated
// tokens such as "margaritakoval" are compared in this form.
func CompactName(s string) string {
	return strings.ReplaceAll(NormalizeName(s), " ", "")
}

// isSeparator returns true if the rune is a token separator inside display names.
// Hyphens are kept: they belong to double-barrelled names.
func isSeparator(r rune) bool {
	return r == '_' || r == '.' || r == ','
}

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '`', '’', 'ʼ', '‘', 'ʹ':
		return true
	}

	return false
}
