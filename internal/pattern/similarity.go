package pattern

import (
	"strings"

	"github.com/namematch/internal/textdist"
)

// VowelSimilarity compares two vowel patterns (as produced by
// VowelPattern) and returns a similarity in [0,1]. Exact matches score
// 1.0. A doubled vowel aligned against the same vowel plus 'H' is a
// known transliteration shape and scores 0.9; an "AH" opposing an "AI"
// is a known false-friend shape and scores 0.3. Short patterns fall back
// to set overlap; longer patterns blend a weighted edit similarity with
// a similarity over acoustically grouped vowels.
func VowelSimilarity(p1, p2 string) float64 {
	if p1 == p2 {
		return 1.0
	}
	if p1 == "" || p2 == "" {
		return 0.0
	}

	if doubledVowelVsH(p1, p2) || doubledVowelVsH(p2, p1) {
		return 0.9
	}

	if ahAgainstAI(p1, p2) || ahAgainstAI(p2, p1) {
		return 0.3
	}

	if len(p1) <= 2 || len(p2) <= 2 {
		return setOverlap(p1, p2)
	}

	raw := editSimilarity(p1, p2, textdist.WeightedVowelDistance(p1, p2))
	g1 := groupVowels(p1)
	g2 := groupVowels(p2)
	grouped := editSimilarity(g1, g2, textdist.Levenshtein(g1, g2))

	return clamp01(0.4*raw + 0.6*grouped)
}

// ConsonantSimilarity compares two consonant patterns positionally.
// Earlier positions carry more weight. Patterns agreeing on an "RH"
// cluster are pulled up to at least 0.8; patterns disagreeing on it are
// capped at 0.6.
func ConsonantSimilarity(p1, p2 string) float64 {
	if p1 == p2 {
		return 1.0
	}
	if p1 == "" || p2 == "" {
		return 0.0
	}

	var sim float64
	if len(p1) <= 2 || len(p2) <= 2 {
		sim = positionalRatio(p1, p2)
	} else {
		sim = weightedAlignment(p1, p2)
	}

	rh1 := strings.Contains(p1, "RH")
	rh2 := strings.Contains(p2, "RH")
	switch {
	case rh1 && rh2 && sim < 0.8:
		sim = 0.8
	case rh1 != rh2 && sim > 0.6:
		sim = 0.6
	}

	return clamp01(sim)
}

// positionalRatio is the share of positions where both patterns carry
// the same symbol, over the longer pattern.
func positionalRatio(p1, p2 string) float64 {
	minLen := len(p1)
	maxLen := len(p2)
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}

	matches := 0
	for i := 0; i < minLen; i++ {
		if p1[i] == p2[i] {
			matches++
		}
	}
	return float64(matches) / float64(maxLen)
}

// weightedAlignment scores positional agreement with earlier positions
// weighted more heavily, normalized to [0,1].
func weightedAlignment(p1, p2 string) float64 {
	minLen := len(p1)
	maxLen := len(p2)
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}

	var total, matched float64
	for i := 0; i < maxLen; i++ {
		w := 1.0 / float64(i+1)
		total += w
		if i < minLen && p1[i] == p2[i] {
			matched += w
		}
	}
	if total == 0 {
		return 0.0
	}
	return matched / total
}

// setOverlap is a Jaccard similarity over the symbols of two patterns.
func setOverlap(p1, p2 string) float64 {
	set1 := make(map[byte]bool, len(p1))
	for i := 0; i < len(p1); i++ {
		set1[p1[i]] = true
	}
	set2 := make(map[byte]bool, len(p2))
	for i := 0; i < len(p2); i++ {
		set2[p2[i]] = true
	}

	common := 0
	for c := range set1 {
		if set2[c] {
			common++
		}
	}
	union := len(set1) + len(set2) - common
	if union == 0 {
		return 0.0
	}
	return float64(common) / float64(union)
}

// groupVowels folds acoustically similar vowels together (A/E, I/Y, O/U)
// and collapses a doubled vowel into the vowel+H shape, so "Saara" and
// "Sarah" normalize to the same grouped pattern.
func groupVowels(p string) string {
	var b strings.Builder
	var prev byte
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch c {
		case 'E':
			c = 'A'
		case 'Y':
			c = 'I'
		case 'U':
			c = 'O'
		}
		if c == prev && isVowel(c) {
			c = 'H'
		}
		b.WriteByte(c)
		prev = c
	}
	return b.String()
}

// doubledVowelVsH reports a doubled vowel in a aligned against the same
// vowel followed by 'H' in b.
func doubledVowelVsH(a, b string) bool {
	for i := 0; i+1 < len(a); i++ {
		if a[i] != a[i+1] || !isVowel(a[i]) {
			continue
		}
		if i+1 < len(b) && b[i] == a[i] && b[i+1] == 'H' {
			return true
		}
	}
	return false
}

// ahAgainstAI reports the Sarah/Saira false-friend shape.
func ahAgainstAI(a, b string) bool {
	return strings.Contains(a, "AH") && strings.Contains(b, "AI")
}

func editSimilarity(p1, p2 string, dist int) float64 {
	maxLen := len(p1)
	if len(p2) > maxLen {
		maxLen = len(p2)
	}
	if maxLen == 0 {
		return 1.0
	}
	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0.0
	}
	return sim
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
