package phonetics

import (
	"strings"
)

// Code holds the two phonetic representations of a word. Primary and
// Alternate differ where a letter has an ambiguous pronunciation, so
// two spellings of one name usually share at least one code.
type Code struct {
	Primary   string
	Alternate string
}

// Encode produces the primary/alternate phonetic code pair for a word.
// Vowels are coded only at the word start (always as "A"), repeated
// consonants collapse, and consonants map through a fixed substitution
// table with positional refinements (C softens before E/I/Y, H survives
// only after a vowel and only in the primary code, W and Y survive only
// before a vowel).
func Encode(word string) Code {
	s := lettersUpper(word)
	if s == "" {
		return Code{}
	}

	var primary, alternate strings.Builder

	p, a := encodeFirst(s)
	primary.WriteString(p)
	alternate.WriteString(a)

	for i := 1; i < len(s); i++ {
		c := s[i]
		if isVowel(c) {
			continue
		}
		if c == s[i-1] {
			continue
		}

		switch c {
		case 'B':
			primary.WriteByte('P')
			alternate.WriteByte('P')
		case 'C':
			if nextIsSoftener(s, i) {
				primary.WriteByte('S')
				alternate.WriteByte('S')
			} else {
				primary.WriteByte('K')
				alternate.WriteByte('K')
			}
		case 'D':
			primary.WriteByte('T')
			alternate.WriteByte('T')
		case 'F', 'V':
			primary.WriteByte('F')
			alternate.WriteByte('F')
		case 'G':
			primary.WriteByte('K')
			alternate.WriteByte('K')
		case 'Q':
			primary.WriteByte('K')
			alternate.WriteByte('K')
		case 'X':
			primary.WriteString("KS")
			alternate.WriteString("KS")
		case 'Z':
			primary.WriteByte('S')
			alternate.WriteByte('S')
		case 'H':
			// audible only after a vowel; the alternate drops it entirely
			if isVowel(s[i-1]) {
				primary.WriteByte('H')
			}
		case 'W':
			if i+1 < len(s) && isVowel(s[i+1]) {
				primary.WriteByte('W')
				alternate.WriteByte('W')
			}
		case 'Y':
			if i+1 < len(s) && isVowel(s[i+1]) {
				primary.WriteByte('Y')
				alternate.WriteByte('Y')
			}
		default:
			primary.WriteByte(c)
			alternate.WriteByte(c)
		}
	}

	return Code{Primary: primary.String(), Alternate: alternate.String()}
}

// encodeFirst maps the first letter of a word into both codes.
func encodeFirst(s string) (primary, alternate string) {
	c := s[0]
	if isVowel(c) {
		return "A", "A"
	}

	switch c {
	case 'B':
		return "P", "P"
	case 'C':
		if nextIsSoftener(s, 0) {
			return "S", "S"
		}
		return "K", "K"
	case 'D':
		return "T", "T"
	case 'F', 'V':
		return "F", "F"
	case 'G', 'Q':
		return "K", "K"
	case 'X':
		return "KS", "KS"
	case 'Z':
		return "S", "S"
	case 'Y':
		return "Y", "A"
	default:
		return string(c), string(c)
	}
}

// nextIsSoftener reports whether the letter after position i softens a
// preceding C (E, I or Y).
func nextIsSoftener(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	n := s[i+1]
	return n == 'E' || n == 'I' || n == 'Y'
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
