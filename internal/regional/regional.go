// Package regional implements the name-family heuristics the generic
// scorers cannot capture: Hispanic and Arabic romanization conventions,
// plus a small table of literal transliteration equivalences. Routing is
// a closed set of kinds dispatched once per comparison.
package regional

import (
	"strings"

	"github.com/namematch/internal/normalize"
	"github.com/namematch/internal/pattern"
	"github.com/namematch/internal/textdist"
)

// Kind identifies which specialized scorer applies to a comparison.
type Kind int

const (
	Generic Kind = iota
	Hispanic
	Arabic
)

func (k Kind) String() string {
	switch k {
	case Hispanic:
		return "hispanic"
	case Arabic:
		return "arabic"
	default:
		return "generic"
	}
}

var (
	hispanicPrefixes = []string{"MI", "MA", "JO", "JU", "CA", "LU", "RO", "RA"}
	hispanicInfixes  = []string{"GL", "GU", "RR", "LL", "NZ", "CH"}
	hispanicSuffixes = []string{"EZ", "ES", "OS", "AS", "IO", "IA", "EL"}
)

// Detect returns the specialized kind shared by two names, with the
// Hispanic check taking precedence over the Arabic one. Generic means no
// specialized scorer applies.
func Detect(name1, name2 string) Kind {
	if IsHispanic(name1) && IsHispanic(name2) {
		return Hispanic
	}
	if IsArabic(name1) && IsArabic(name2) {
		return Arabic
	}
	return Generic
}

// Similarity dispatches to the specialized scorer for the given kind.
// Generic always returns 0; callers fall back to ordinary scoring.
func Similarity(kind Kind, name1, name2 string) float64 {
	switch kind {
	case Hispanic:
		return HispanicSimilarity(name1, name2)
	case Arabic:
		return ArabicSimilarity(name1, name2)
	default:
		return 0.0
	}
}

// IsHispanic reports whether any word of a name carries a Hispanic
// spelling signature: a known prefix, infix cluster, or suffix.
func IsHispanic(name string) bool {
	for _, part := range normalize.Parts(name) {
		if hispanicWord(strings.ToUpper(part)) {
			return true
		}
	}
	return false
}

func hispanicWord(w string) bool {
	if len(w) < 2 {
		return false
	}
	for _, p := range hispanicPrefixes {
		if strings.HasPrefix(w, p) {
			return true
		}
	}
	for _, in := range hispanicInfixes {
		if strings.Contains(w, in) {
			return true
		}
	}
	for _, s := range hispanicSuffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

// IsArabic reports whether a name carries an Arabic romanization marker:
// an "al-"/"el-" article or a "bin "/"ibn " patronymic. Checked against
// the raw string because normalization folds the hyphen away.
func IsArabic(name string) bool {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.Contains(s, "al-") || strings.Contains(s, "el-") {
		return true
	}
	return strings.HasPrefix(s, "bin ") || strings.HasPrefix(s, "ibn ")
}

// HispanicSimilarity scores the one Hispanic pattern with a dedicated
// rule: both names starting "MI" where one spells the guttural with G
// and the other with H (Miguel/Mihel). The residual similarity with G
// and H stripped decides between a strong and a moderate score. Any
// other shape returns 0 and falls back to generic scoring.
func HispanicSimilarity(name1, name2 string) float64 {
	w1 := strings.ToUpper(normalize.Name(name1))
	w2 := strings.ToUpper(normalize.Name(name2))

	if !strings.HasPrefix(w1, "MI") || !strings.HasPrefix(w2, "MI") {
		return 0.0
	}

	gh := strings.Contains(w1, "G") && strings.Contains(w2, "H") ||
		strings.Contains(w1, "H") && strings.Contains(w2, "G")
	if !gh {
		return 0.0
	}

	residual := textdist.DamerauSimilarity(stripGH(w1), stripGH(w2))
	if residual > 0.7 {
		return 0.9
	}
	return 0.7
}

func stripGH(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'G' || r == 'H' {
			return -1
		}
		return r
	}, s)
}

// ArabicSimilarity scores a pair of likely-Arabic names through their
// vowel and consonant structure. The vowel+H versus doubled-vowel shape
// (Sarah/Saara) is a strong transliteration signal; disagreement on the
// vowel+H shape with diverging vowel structure is a strong negative one.
// Everything else rides on consonant-structure similarity.
func ArabicSimilarity(name1, name2 string) float64 {
	n1 := strings.ToUpper(normalize.Name(name1))
	n2 := strings.ToUpper(normalize.Name(name2))
	if n1 == "" || n2 == "" {
		return 0.0
	}

	lenDiff := len(n1) - len(n2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > 3 {
		return 0.0
	}

	vp1 := pattern.VowelPattern(n1)
	vp2 := pattern.VowelPattern(n2)

	if doubledVsH(vp1, vp2) || doubledVsH(vp2, vp1) {
		return 0.85
	}

	hasH1 := strings.Contains(vp1, "H")
	hasH2 := strings.Contains(vp2, "H")
	if hasH1 != hasH2 && len(stripA(vp1)) != len(stripA(vp2)) {
		return 0.1
	}

	cp1 := pattern.ConsonantPattern(n1)
	cp2 := pattern.ConsonantPattern(n2)
	if cp1 == "" || cp2 == "" {
		return 0.0
	}
	cpDiff := len(cp1) - len(cp2)
	if cpDiff < 0 {
		cpDiff = -cpDiff
	}
	if cpDiff > 2 {
		return 0.0
	}

	cs := pattern.ConsonantSimilarity(cp1, cp2)
	if cs > 0.7 {
		if groupArabicVowels(vp1) == groupArabicVowels(vp2) {
			return 0.9
		}
		vpDiff := len(vp1) - len(vp2)
		if vpDiff < 0 {
			vpDiff = -vpDiff
		}
		if vpDiff <= 1 {
			return 0.7
		}
	}
	return cs / 2
}

// doubledVsH reports a doubled vowel in a aligned with the same vowel
// followed by 'H' in b.
func doubledVsH(a, b string) bool {
	for i := 0; i+1 < len(a); i++ {
		if a[i] != a[i+1] || a[i] == 'H' {
			continue
		}
		if i+1 < len(b) && b[i] == a[i] && b[i+1] == 'H' {
			return true
		}
	}
	return false
}

// stripA removes the neutral vowel from a pattern so only the
// structurally meaningful vowels count toward length.
func stripA(p string) string {
	return strings.Map(func(r rune) rune {
		if r == 'A' {
			return -1
		}
		return r
	}, p)
}

// groupArabicVowels folds vowels into the two sound classes Arabic
// romanization distinguishes: A/E/I and O/U. The H markers are dropped;
// the earlier branches already handled disagreement on them.
func groupArabicVowels(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case 'A', 'E', 'I', 'Y':
			b.WriteByte('1')
		case 'O', 'U':
			b.WriteByte('2')
		}
	}
	return b.String()
}
