package textdist

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"kitten", "sitting", 3},
		{"sarah", "sarah", 0},
		{"", "khan", 4},
		{"khan", "", 4},
		{"jon", "john", 1},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.s1, tt.s2); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
		}
	}
}

func TestDamerauSimilarity(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   float64
	}{
		{"abcd", "abcd", 1.0},
		{"abcd", "abdc", 0.75}, // one transposition over four chars
		{"", "", 1.0},
		{"abc", "", 0.0},
		{"", "abc", 0.0},
	}

	for _, tt := range tests {
		got := DamerauSimilarity(tt.s1, tt.s2)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DamerauSimilarity(%q, %q) = %v, want %v", tt.s1, tt.s2, got, tt.want)
		}
	}
}

func TestWeightedVowelDistance(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 string
		want   int
	}{
		{
			name: "identical",
			s1:   "SARA", s2: "SARA",
			want: 0,
		},
		{
			name: "empty left",
			s1: "", s2: "ABC",
			want: 3,
		},
		{
			name: "empty right",
			s1: "ABC", s2: "",
			want: 3,
		},
		{
			name: "plain substitution",
			s1: "A", s2: "B",
			want: 1,
		},
		{
			name: "vowel-h boundary costs double",
			s1: "AA", s2: "AH",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedVowelDistance(tt.s1, tt.s2)
			if got != tt.want {
				t.Errorf("WeightedVowelDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestWeightedVowelDistanceKeepsFamiliesApart(t *testing.T) {
	// crossing the vowel+H boundary must cost more than the plain
	// edit distance suggests
	plain := Levenshtein("AA", "AH")
	weighted := WeightedVowelDistance("AA", "AH")
	if weighted <= plain {
		t.Errorf("weighted distance %d should exceed plain distance %d for AA vs AH", weighted, plain)
	}
}
