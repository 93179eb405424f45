package phonetics

import "strings"

// equivalent letter pairs that commonly swap across transliterations
var equivalentPairs = map[[2]byte]bool{
	{'K', 'C'}: true,
	{'F', 'P'}: true,
	{'J', 'G'}: true,
	{'S', 'Z'}: true,
	{'A', 'E'}: true,
}

// EquivalentLetters reports whether two letters belong to the same
// phonetic-equivalence group ({K,C}, {F,P}, {J,G}, {S,Z}, {A,E}).
func EquivalentLetters(a, b byte) bool {
	a = upper(a)
	b = upper(b)
	if a == b {
		return true
	}
	return equivalentPairs[[2]byte{a, b}] || equivalentPairs[[2]byte{b, a}]
}

// EquivalentStart reports whether two words begin with phonetically
// equivalent sounds, including the CH/K transliteration rule
// (e.g. "Christina"/"Kristina").
func EquivalentStart(w1, w2 string) bool {
	w1 = strings.ToUpper(strings.TrimSpace(w1))
	w2 = strings.ToUpper(strings.TrimSpace(w2))
	if w1 == "" || w2 == "" {
		return false
	}

	if strings.HasPrefix(w1, "CH") && w2[0] == 'K' {
		return true
	}
	if strings.HasPrefix(w2, "CH") && w1[0] == 'K' {
		return true
	}

	return EquivalentLetters(w1[0], w2[0])
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
