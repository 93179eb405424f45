// Package textdist wraps the edit-distance primitives used by the
// matching pipeline: plain Levenshtein, Damerau-Levenshtein similarity,
// and a vowel-aware weighted Levenshtein variant that keeps phonetically
// distinct name families apart.
package textdist

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

// Levenshtein returns the standard unit-cost edit distance between two
// strings. Empty inputs cost the length of the other side.
func Levenshtein(s1, s2 string) int {
	return levenshtein.ComputeDistance(s1, s2)
}

// DamerauSimilarity normalizes the Damerau-Levenshtein distance
// (transpositions count as one edit) into a similarity in [0,1].
func DamerauSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	dist := edlib.DamerauLevenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0.0
	}
	return sim
}

// WeightedVowelDistance is a Levenshtein variant tuned for vowel
// patterns. Substituting across a vowel+H boundary costs 2 instead of 1,
// and substituting an "AI" pair against an "AA"/"AH" pair costs 3, so
// "Saira" stays apart from "Sarah" and "Saara" even though the plain
// distance is small.
func WeightedVowelDistance(s1, s2 string) int {
	s1 = strings.ToUpper(s1)
	s2 = strings.ToUpper(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1]
				continue
			}

			sub := prev[j-1] + substitutionCost(s1, i-1, s2, j-1)
			ins := curr[j-1] + 1
			del := prev[j] + 1

			best := sub
			if ins < best {
				best = ins
			}
			if del < best {
				best = del
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// substitutionCost raises the cost of edits that would conflate
// structurally different vowel families. A position participates in a
// pair pattern either as its first or its second character.
func substitutionCost(s1 string, i int, s2 string, j int) int {
	if aiPattern(s1, i) && aaPattern(s2, j) {
		return 3
	}
	if aiPattern(s2, j) && aaPattern(s1, i) {
		return 3
	}

	if vowelH(s1, i) != vowelH(s2, j) {
		return 2
	}

	return 1
}

// vowelH reports that position i participates in a vowel+'H' pair.
func vowelH(s string, i int) bool {
	if i+1 < len(s) && isVowel(s[i]) && s[i+1] == 'H' {
		return true
	}
	return i > 0 && s[i] == 'H' && isVowel(s[i-1])
}

// aiPattern reports that position i participates in an "AI" pair.
func aiPattern(s string, i int) bool {
	if i+1 < len(s) && s[i] == 'A' && s[i+1] == 'I' {
		return true
	}
	return i > 0 && s[i] == 'I' && s[i-1] == 'A'
}

// aaPattern reports that position i participates in an "AA" or "AH" pair.
func aaPattern(s string, i int) bool {
	if i+1 < len(s) && s[i] == 'A' && (s[i+1] == 'A' || s[i+1] == 'H') {
		return true
	}
	return i > 0 && (s[i] == 'A' || s[i] == 'H') && s[i-1] == 'A'
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}
