package phonetics

import (
	"testing"
)

func TestSoundex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Robert", "R163"},
		{"Smith", "S530"},
		{"Smyth", "S530"},
		{"Ashcraft", "A261"},
		{"Tymczak", "T522"},
		{"Jackson", "J250"},
		{"Sara", "S600"},
		{"Sarah", "S600"},
		{"a", "A000"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Soundex(tt.input)
			if got != tt.want {
				t.Errorf("Soundex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		input         string
		wantPrimary   string
		wantAlternate string
	}{
		{"Sara", "SR", "SR"},
		{"Sarah", "SRH", "SR"},
		{"Miguel", "MKL", "MKL"},
		{"Mihel", "MHL", "ML"},
		{"Yusuf", "YSF", "ASF"},
		{"Ali", "AL", "AL"},
		{"Cindy", "SNT", "SNT"},
		{"Christina", "KRSTN", "KRSTN"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Encode(tt.input)
			if got.Primary != tt.wantPrimary || got.Alternate != tt.wantAlternate {
				t.Errorf("Encode(%q) = {%q, %q}, want {%q, %q}",
					tt.input, got.Primary, got.Alternate, tt.wantPrimary, tt.wantAlternate)
			}
		})
	}
}

func TestEncodeSharedCode(t *testing.T) {
	// spelling variants of one name should share at least one code
	pairs := [][2]string{
		{"Sara", "Sarah"},
		{"Smith", "Smyth"},
	}

	for _, p := range pairs {
		c1 := Encode(p[0])
		c2 := Encode(p[1])
		if c1.Primary != c2.Primary && c1.Primary != c2.Alternate &&
			c1.Alternate != c2.Primary && c1.Alternate != c2.Alternate {
			t.Errorf("Encode(%q) = %+v and Encode(%q) = %+v share no code", p[0], c1, p[1], c2)
		}
	}
}

func TestEquivalentLetters(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'K', 'C', true},
		{'c', 'k', true},
		{'F', 'P', true},
		{'S', 'Z', true},
		{'A', 'E', true},
		{'B', 'D', false},
		{'M', 'M', true},
	}

	for _, tt := range tests {
		if got := EquivalentLetters(tt.a, tt.b); got != tt.want {
			t.Errorf("EquivalentLetters(%c, %c) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEquivalentStart(t *testing.T) {
	tests := []struct {
		w1, w2 string
		want   bool
	}{
		{"Christina", "Kristina", true},
		{"Katherine", "Catherine", true},
		{"Philip", "Filip", true},
		{"John", "Smith", false},
		{"", "John", false},
	}

	for _, tt := range tests {
		if got := EquivalentStart(tt.w1, tt.w2); got != tt.want {
			t.Errorf("EquivalentStart(%q, %q) = %v, want %v", tt.w1, tt.w2, got, tt.want)
		}
	}
}
