package score

import (
	"strings"

	"github.com/namematch/internal/phonetics"
	"github.com/namematch/internal/textdist"
)

// PhoneticSimilarity scores how alike two words sound, in [0,1]. It
// layers bonuses from the Soundex codes and the primary/alternate
// phonetic code pairs, with dedicated boosts for two recurring
// transliteration families: M-names spelling the guttural as G vs H
// (Miguel/Mihel) and names differing only by a silent H (Sara/Sarah).
func PhoneticSimilarity(w1, w2 string) float64 {
	w1 = strings.ToUpper(strings.TrimSpace(w1))
	w2 = strings.ToUpper(strings.TrimSpace(w2))
	if w1 == "" || w2 == "" {
		return 0.0
	}

	score := 0.0

	sx1 := phonetics.Soundex(w1)
	sx2 := phonetics.Soundex(w2)
	switch {
	case sx1 != "" && sx1 == sx2:
		score += 0.6
	case len(sx1) == 4 && len(sx2) == 4 && sx1[1:] == sx2[1:]:
		score += 0.4
	case sx1 != "" && sx2 != "" && sx1[0] == sx2[0]:
		score += 0.2
	case sx1 != "" && sx2 != "" && phonetics.EquivalentLetters(sx1[0], sx2[0]):
		score += 0.15
	}

	c1 := phonetics.Encode(w1)
	c2 := phonetics.Encode(w2)
	if codesCross(c1, c2) {
		score += 0.6
	} else {
		score += 0.4 * bestCodeSimilarity(c1, c2)
		if phonetics.EquivalentStart(w1, w2) {
			score += 0.2
		}
		if gutturalM(w1, w2) {
			score += 0.25
		}
	}

	if silentH(c1, c2) {
		score += 0.3
	}

	if score > 1 {
		return 1.0
	}
	return score
}

// codesCross reports a full match between any pairing of the two
// primary/alternate code pairs.
func codesCross(c1, c2 phonetics.Code) bool {
	if c1.Primary == "" && c1.Alternate == "" {
		return false
	}
	return c1.Primary == c2.Primary || c1.Primary == c2.Alternate ||
		c1.Alternate == c2.Primary || c1.Alternate == c2.Alternate
}

// bestCodeSimilarity is the highest Damerau-Levenshtein similarity
// across the four code pairings.
func bestCodeSimilarity(c1, c2 phonetics.Code) float64 {
	best := 0.0
	for _, a := range []string{c1.Primary, c1.Alternate} {
		for _, b := range []string{c2.Primary, c2.Alternate} {
			if a == "" || b == "" {
				continue
			}
			if s := textdist.DamerauSimilarity(a, b); s > best {
				best = s
			}
		}
	}
	return best
}

// gutturalM flags the Miguel/Mihel family: both words start with M and
// one spells the guttural consonant as G where the other uses H.
func gutturalM(w1, w2 string) bool {
	if w1[0] != 'M' || w2[0] != 'M' {
		return false
	}
	return strings.Contains(w1, "G") && strings.Contains(w2, "H") ||
		strings.Contains(w1, "H") && strings.Contains(w2, "G")
}

// silentH flags the Sara/Sarah family: exactly one code pair carries an
// H, and stripping it makes the primaries identical.
func silentH(c1, c2 phonetics.Code) bool {
	h1 := strings.Contains(c1.Primary, "H")
	h2 := strings.Contains(c2.Primary, "H")
	if h1 == h2 {
		return false
	}
	stripped1 := strings.ReplaceAll(c1.Primary, "H", "")
	stripped2 := strings.ReplaceAll(c2.Primary, "H", "")
	return stripped1 != "" && stripped1 == stripped2
}
