package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators that carry no meaning in a person name and fold to a space
var separatorReplacer = strings.NewReplacer(
	"-", " ",
	"_", " ",
	".", " ",
	",", " ",
)

// Honorific titles stripped before composite scoring. Matched
// case-insensitively with any trailing period already folded away.
var honorificTitles = map[string]bool{
	"dr":   true,
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"miss": true,
	"prof": true,
	"rev":  true,
	"hon":  true,
	"sir":  true,
	"dame": true,
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name produces the canonical comparison key for a person name: diacritics
// stripped, lowercased, separators folded to spaces, whitespace collapsed
// and trimmed. Applying Name twice yields the same result as applying it
// once.
func Name(raw string) string {
	if raw == "" {
		return ""
	}

	s := RemoveDiacritics(raw)
	s = strings.ToLower(s)
	s = separatorReplacer.Replace(s)

	return strings.Join(strings.Fields(s), " ")
}

// Parts splits a raw name into its normalized space-delimited parts.
// Order is significant: parts occupy first-name/last-name positions.
func Parts(raw string) []string {
	return strings.Fields(Name(raw))
}

// RemoveDiacritics folds accented letters to their base form
// (e.g. "José" -> "Jose") so transliterated spellings compare equal.
func RemoveDiacritics(s string) string {
	result, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return result
}

// IsTitle reports whether a normalized name part is an honorific title.
func IsTitle(part string) bool {
	return honorificTitles[part]
}

// StripTitles removes honorific titles from a list of normalized name
// parts. The input slice is never modified.
func StripTitles(parts []string) []string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if honorificTitles[p] {
			continue
		}
		cleaned = append(cleaned, p)
	}
	return cleaned
}
