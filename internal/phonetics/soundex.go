package phonetics

import (
	"strings"
)

// soundexDigit maps a letter to its Soundex sound class.
// Vowels and Y map to '0' and are dropped after collapsing.
func soundexDigit(c byte) byte {
	switch c {
	case 'B', 'F', 'P', 'V':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	default:
		return '0'
	}
}

// Soundex encodes a word as its classic four-symbol Soundex code: the
// first letter followed by up to three sound-class digits. H and W are
// dropped before digit mapping, adjacent identical digits collapse to
// one, and zeros (vowels) are removed. Short codes are padded with '0'.
func Soundex(word string) string {
	s := lettersUpper(word)
	if s == "" {
		return ""
	}

	var code strings.Builder
	code.WriteByte(s[0])

	lastDigit := byte(0)
	for i := 1; i < len(s); i++ {
		if s[i] == 'H' || s[i] == 'W' {
			continue
		}
		d := soundexDigit(s[i])
		if d == lastDigit {
			continue
		}
		lastDigit = d
		if d != '0' {
			code.WriteByte(d)
		}
	}

	out := code.String()
	for len(out) < 4 {
		out += "0"
	}
	return out[:4]
}

// lettersUpper uppercases a word and strips anything that is not a
// plain ASCII letter.
func lettersUpper(word string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(word)) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
