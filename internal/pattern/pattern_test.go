package pattern

import (
	"math"
	"testing"
)

func TestVowelPattern(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Sarah", "AAH"},
		{"Saara", "AAA"},
		{"Saira", "AIA"},
		{"Miguel", "IUE"},
		{"Lynn", "Y"},
		{"", ""},
		{"bcd", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := VowelPattern(tt.input); got != tt.want {
				t.Errorf("VowelPattern(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConsonantPattern(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Sarah", "SRHH"}, // post-vocalic H doubled
		{"Saira", "SR"},
		{"Miguel", "MGL"},
		{"Khan", "KHN"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ConsonantPattern(tt.input); got != tt.want {
				t.Errorf("ConsonantPattern(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVowelSimilarity(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 string
		want   float64
	}{
		{
			name: "identical patterns",
			p1:   "AAH", p2: "AAH",
			want: 1.0,
		},
		{
			name: "doubled vowel against vowel plus H",
			p1: "AAH", p2: "AAA",
			want: 0.9,
		},
		{
			name: "doubled vowel against vowel plus H reversed",
			p1: "AAA", p2: "AAH",
			want: 0.9,
		},
		{
			name: "AH against AI is penalized",
			p1: "AAH", p2: "AIA",
			want: 0.3,
		},
		{
			name: "empty side",
			p1: "", p2: "AA",
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VowelSimilarity(tt.p1, tt.p2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VowelSimilarity(%q, %q) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestVowelSimilarityShortPatterns(t *testing.T) {
	// short patterns use set overlap: {A,E} vs {A,I} share one of three
	got := VowelSimilarity("AE", "AI")
	want := 1.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("VowelSimilarity(AE, AI) = %v, want %v", got, want)
	}
}

func TestConsonantSimilarity(t *testing.T) {
	if got := ConsonantSimilarity("SR", "SR"); got != 1.0 {
		t.Errorf("ConsonantSimilarity(SR, SR) = %v, want 1.0", got)
	}
	if got := ConsonantSimilarity("", "SR"); got != 0.0 {
		t.Errorf("ConsonantSimilarity(empty, SR) = %v, want 0.0", got)
	}

	// early positions weigh more: MGL vs MHL matches at 0 and 2
	got := ConsonantSimilarity("MGL", "MHL")
	want := (1.0 + 1.0/3.0) / (1.0 + 0.5 + 1.0/3.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ConsonantSimilarity(MGL, MHL) = %v, want %v", got, want)
	}
}

func TestConsonantSimilarityRHCluster(t *testing.T) {
	// disagreement on an RH cluster caps similarity
	if got := ConsonantSimilarity("SRHH", "SRSS"); got > 0.6 {
		t.Errorf("ConsonantSimilarity with one-sided RH = %v, want <= 0.6", got)
	}
	// agreement on an RH cluster floors similarity
	if got := ConsonantSimilarity("KRHT", "SRHN"); got < 0.8 {
		t.Errorf("ConsonantSimilarity with shared RH = %v, want >= 0.8", got)
	}
}

func TestTransliterationPair(t *testing.T) {
	tests := []struct {
		w1, w2 string
		want   bool
	}{
		{"Saara", "Sarah", true},
		{"Sarah", "Saara", true},
		{"Saara", "Saira", true},
		{"John", "Jane", false},
		{"Sarah", "Sarah", false},
	}

	for _, tt := range tests {
		if got := TransliterationPair(tt.w1, tt.w2); got != tt.want {
			t.Errorf("TransliterationPair(%q, %q) = %v, want %v", tt.w1, tt.w2, got, tt.want)
		}
	}
}
