// Package score combines the similarity signals — phonetic codes, edit
// distance, Jaro-Winkler, vowel patterns, regional heuristics — into the
// composite confidence scores the matching pipeline ranks candidates by.
package score

import "strings"

// Jaro returns the Jaro similarity of two strings in [0,1]. Two empty
// strings are identical (1.0); exactly one empty string scores 0.
func Jaro(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	window := maxInt(len(s1), len(s2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(s1))
	matched2 := make([]bool, len(s2))

	matches := 0
	for i := 0; i < len(s1); i++ {
		lo := maxInt(0, i-window)
		hi := minInt(len(s2), i+window+1)
		for j := lo; j < hi; j++ {
			if matched2[j] || s1[i] != s2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len(s1); i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if s1[i] != s2[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(s1)) + m/float64(len(s2)) + (m-float64(transpositions))/m) / 3.0
}

// JaroWinkler boosts the Jaro similarity by a common-prefix bonus:
// 0.1 per matching leading character, up to four characters, scaled so
// already-similar strings gain the most.
func JaroWinkler(s1, s2 string) float64 {
	s1 = strings.ToLower(s1)
	s2 = strings.ToLower(s2)

	jaro := Jaro(s1, s2)

	prefix := 0
	limit := minInt(minInt(len(s1), len(s2)), 4)
	for i := 0; i < limit; i++ {
		if s1[i] != s2[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*0.1*(1.0-jaro)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
