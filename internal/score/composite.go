package score

import (
	"strings"

	"github.com/namematch/internal/normalize"
	"github.com/namematch/internal/pattern"
	"github.com/namematch/internal/regional"
	"github.com/namematch/internal/textdist"
)

// Fixed weights of the single-part composite score. Calibration points,
// not derivations: tuned against the known transliteration families.
const (
	weightPhonetic = 0.25
	weightEdit     = 0.20
	weightJaro     = 0.20
	weightVowel    = 0.15
	weightRegional = 0.20

	translitEquivalentScore = 0.95

	// floors below which a comparison counts as unrelated
	floorPhonetic = 0.1
	floorEdit     = 0.1
	floorJaro     = 0.3
	floorRegional = 0.2
	floorVowel    = 0.3
)

// WordScore is the composite confidence that two single name words
// denote the same name, in [0,1]. Known transliteration equivalents
// short-circuit to a fixed high confidence. Comparisons where every
// signal sits below its floor are discarded as unrelated and score 0.
func WordScore(w1, w2 string) float64 {
	w1 = strings.TrimSpace(w1)
	w2 = strings.TrimSpace(w2)
	if w1 == "" || w2 == "" {
		return 0.0
	}

	if regional.TransliterationEquivalent(w1, w2) {
		return translitEquivalentScore
	}

	ph := PhoneticSimilarity(w1, w2)
	ed := textdist.DamerauSimilarity(strings.ToLower(w1), strings.ToLower(w2))
	jw := JaroWinkler(w1, w2)
	vp := pattern.VowelSimilarity(pattern.VowelPattern(w1), pattern.VowelPattern(w2))

	kind := regional.Detect(w1, w2)
	reg := regional.Similarity(kind, w1, w2)

	if ph < floorPhonetic && ed < floorEdit && jw < floorJaro && reg < floorRegional && vp < floorVowel {
		return 0.0
	}

	s := weightPhonetic*ph + weightEdit*ed + weightJaro*jw + weightVowel*vp
	if kind != regional.Generic {
		s += weightRegional * reg
	}

	return clamp01(s)
}

// Multi-part scoring constants. A query part counts as matched when its
// best per-part score clears the match bar; incomplete coverage divides
// by the stretched part count instead.
const (
	partMatchBar       = 0.75
	translitPartBonus  = 0.10
	coveragePenaltyMul = 1.5
)

// MultipartScore is the composite confidence that a multi-part query
// and a candidate denote the same person. Honorific titles are stripped
// first. When both sides carry the same regional signature the
// specialized scorer decides; otherwise each query part is matched
// against its best candidate part by Jaro-Winkler with a small
// transliteration-pattern bonus, and coverage gaps are penalized.
func MultipartScore(rawQuery, rawCandidate string) float64 {
	qParts := normalize.StripTitles(normalize.Parts(rawQuery))
	cParts := normalize.StripTitles(normalize.Parts(rawCandidate))
	if len(qParts) == 0 || len(cParts) == 0 {
		return 0.0
	}

	switch regional.Detect(rawQuery, rawCandidate) {
	case regional.Hispanic:
		if s := regional.HispanicSimilarity(strings.Join(qParts, " "), strings.Join(cParts, " ")); s > 0 {
			return clamp01(s)
		}
		// not the recognized Hispanic shape; score generically
	case regional.Arabic:
		return clamp01(regional.ArabicSimilarity(strings.Join(qParts, " "), strings.Join(cParts, " ")))
	}

	matched := 0
	sum := 0.0
	for _, qp := range qParts {
		best := 0.0
		for _, cp := range cParts {
			s := JaroWinkler(qp, cp)
			if pattern.TransliterationPair(qp, cp) {
				s += translitPartBonus
				if s > 1 {
					s = 1.0
				}
			}
			if s > best {
				best = s
			}
		}
		if best > partMatchBar {
			matched++
			sum += best
		}
	}

	n := float64(len(qParts))
	if matched < len(qParts) {
		return clamp01(sum / (n * coveragePenaltyMul))
	}
	return clamp01(sum / n)
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
