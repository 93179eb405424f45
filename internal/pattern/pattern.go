// Package pattern extracts and compares the vowel and consonant
// skeletons of name words. The skeletons are what survive transliteration:
// two romanizations of the same name usually keep consonant structure and
// differ only in vowel spelling ("Saara"/"Sarah"), while genuinely
// different names ("Saira"/"Sarah") differ structurally.
package pattern

import (
	"strings"
)

// VowelPattern returns the ordered vowel skeleton of a word: every vowel
// (A,E,I,O,U,Y) in original order, plus an 'H' marker wherever an H
// immediately follows a vowel. The marker is what distinguishes "Sarah"
// (AAH) from "Saara" (AAA) and "Saira" (AIA).
func VowelPattern(word string) string {
	s := strings.ToUpper(strings.TrimSpace(word))
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isVowel(c) {
			b.WriteByte(c)
			continue
		}
		if c == 'H' && i > 0 && isVowel(s[i-1]) {
			b.WriteByte('H')
		}
	}
	return b.String()
}

// ConsonantPattern returns the ordered consonant skeleton of a word. An
// 'H' immediately following a vowel is emitted doubled to raise its
// structural weight.
func ConsonantPattern(word string) string {
	s := strings.ToUpper(strings.TrimSpace(word))
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' || isVowel(c) {
			continue
		}
		b.WriteByte(c)
		if c == 'H' && i > 0 && isVowel(s[i-1]) {
			b.WriteByte('H')
		}
	}
	return b.String()
}

// TransliterationPair reports whether two words look like transliteration
// variants of one name: a doubled vowel in one aligns with either an 'H'
// or a differing vowel in the other at the corresponding position.
func TransliterationPair(w1, w2 string) bool {
	p1 := VowelPattern(w1)
	p2 := VowelPattern(w2)
	return doubledVowelAligns(p1, p2) || doubledVowelAligns(p2, p1)
}

// doubledVowelAligns scans a for a doubled vowel whose counterpart in b
// is the same vowel followed by 'H' or by a different vowel.
func doubledVowelAligns(a, b string) bool {
	for i := 0; i+1 < len(a); i++ {
		if a[i] != a[i+1] || !isVowel(a[i]) {
			continue
		}
		if i+1 >= len(b) || b[i] != a[i] {
			continue
		}
		next := b[i+1]
		if next == 'H' {
			return true
		}
		if isVowel(next) && next != a[i] {
			return true
		}
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}
