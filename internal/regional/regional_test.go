package regional

import (
	"math"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name1, name2 string
		want         Kind
	}{
		{"Miguel", "Mihel", Hispanic},
		{"Maria Garcia", "Maria Gonzalez", Hispanic},
		{"Ali Al-Mansour", "Ali Al-Fayed", Arabic},
		{"John", "Smith", Generic},
		{"", "", Generic},
	}

	for _, tt := range tests {
		if got := Detect(tt.name1, tt.name2); got != tt.want {
			t.Errorf("Detect(%q, %q) = %v, want %v", tt.name1, tt.name2, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Hispanic.String() != "hispanic" || Arabic.String() != "arabic" || Generic.String() != "generic" {
		t.Errorf("unexpected Kind strings: %v %v %v", Hispanic, Arabic, Generic)
	}
}

func TestIsHispanic(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Miguel", true},    // MI prefix
		{"Gonzalez", true},  // NZ infix, EZ suffix
		{"Rodriguez", true}, // RO prefix
		{"Smith", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHispanic(tt.name); got != tt.want {
			t.Errorf("IsHispanic(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsArabic(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Ali Al-Mansour", true},
		{"Omar El-Sayed", true},
		{"bin Rashid", true},
		{"Ibn Battuta", true},
		{"Albert Hall", false}, // no hyphenated article
		{"Smith", false},
	}

	for _, tt := range tests {
		if got := IsArabic(tt.name); got != tt.want {
			t.Errorf("IsArabic(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHispanicSimilarity(t *testing.T) {
	tests := []struct {
		name1, name2 string
		want         float64
	}{
		{"Miguel", "Mihel", 0.9},  // guttural G/H swap with close residual
		{"Mihel", "Miguel", 0.9},
		{"Juan", "Pedro", 0.0},    // no MI prefix
		{"Miguel", "Miguel", 0.0}, // no G/H disagreement
	}

	for _, tt := range tests {
		got := HispanicSimilarity(tt.name1, tt.name2)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HispanicSimilarity(%q, %q) = %v, want %v", tt.name1, tt.name2, got, tt.want)
		}
	}
}

func TestArabicSimilarity(t *testing.T) {
	tests := []struct {
		name1, name2 string
		want         float64
	}{
		{"Sarah", "Saara", 0.85}, // doubled vowel against vowel+H
		{"Saara", "Sarah", 0.85},
		{"Amr", "Omar", 0.7},     // same consonants, vowel structure one apart
		{"Ali", "Mohammed", 0.0}, // length gap too wide
		{"", "Ali", 0.0},
	}

	for _, tt := range tests {
		got := ArabicSimilarity(tt.name1, tt.name2)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ArabicSimilarity(%q, %q) = %v, want %v", tt.name1, tt.name2, got, tt.want)
		}
	}
}

func TestArabicSimilarityHDisagreement(t *testing.T) {
	// one side carries the vowel+H marker and the stripped vowel shapes
	// diverge: strong negative signal
	got := ArabicSimilarity("Sarah", "Sairai")
	if got > 0.1+1e-9 {
		t.Errorf("ArabicSimilarity(Sarah, Sairai) = %v, want <= 0.1", got)
	}
}

func TestTransliterationEquivalent(t *testing.T) {
	tests := []struct {
		w1, w2 string
		want   bool
	}{
		{"Mohammed", "Muhammad", true},
		{"muhammad", "mohammed", true},
		{"Aisha", "Ayesha", true},
		{"Sara", "Sarah", true},
		{"Yusuf", "Yousef", true},
		{"Sarah", "Saira", false},
		{"Sarah", "Sarah", false}, // identical words are not variants
		{"Nadya", "Nadia", true}, // y/i substitution shape
		{"John", "Jane", false},
	}

	for _, tt := range tests {
		if got := TransliterationEquivalent(tt.w1, tt.w2); got != tt.want {
			t.Errorf("TransliterationEquivalent(%q, %q) = %v, want %v", tt.w1, tt.w2, got, tt.want)
		}
	}
}
