package regional

import (
	"github.com/namematch/internal/normalize"
	"github.com/namematch/internal/pattern"
)

// knownEquivalents are literal word pairs that denote the same name
// across romanization conventions. Both orientations are checked.
var knownEquivalents = map[[2]string]bool{
	{"mohammed", "muhammad"}: true,
	{"mohammed", "mohammad"}: true,
	{"muhammad", "mohammad"}: true,
	{"aisha", "ayesha"}:      true,
	{"sara", "sarah"}:        true,
	{"yusuf", "yousef"}:      true,
	{"usman", "othman"}:      true,
	{"miguel", "mihel"}:      true,
}

// TransliterationEquivalent reports whether two words are known
// transliteration equivalents: either a listed literal pair, or the
// generic y/i substitution shape (identical consonant structure, vowel
// patterns differing only by y<->i swaps, and high vowel similarity).
// A match overrides ordinary scoring with a fixed high confidence.
func TransliterationEquivalent(w1, w2 string) bool {
	a := normalize.Name(w1)
	b := normalize.Name(w2)
	if a == "" || b == "" || a == b {
		return false
	}

	if knownEquivalents[[2]string{a, b}] || knownEquivalents[[2]string{b, a}] {
		return true
	}

	return yiSubstitution(a, b)
}

// yiSubstitution detects names that differ only in spelling a vowel as
// "y" versus "i" (e.g. "Nadiya"/"Nadia" word families).
func yiSubstitution(a, b string) bool {
	if pattern.ConsonantPattern(a) != pattern.ConsonantPattern(b) {
		return false
	}

	vp1 := pattern.VowelPattern(a)
	vp2 := pattern.VowelPattern(b)
	if len(vp1) != len(vp2) {
		return false
	}

	swapped := false
	for i := 0; i < len(vp1); i++ {
		if vp1[i] == vp2[i] {
			continue
		}
		if isYISwap(vp1[i], vp2[i]) {
			swapped = true
			continue
		}
		return false
	}
	if !swapped {
		return false
	}

	return pattern.VowelSimilarity(vp1, vp2) > 0.7
}

func isYISwap(c1, c2 byte) bool {
	return c1 == 'Y' && c2 == 'I' || c1 == 'I' && c2 == 'Y'
}
