package algorithms

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want int
	}{
		{name: "identical", s1: "ahmed", s2: "ahmed", want: 0},
		{name: "both empty", s1: "", s2: "", want: 0},
		{name: "one empty", s1: "ahmed", s2: "", want: 5},
		{name: "single substitution", s1: "ahmed", s2: "ahmad", want: 1},
		{name: "single insertion", s1: "mohamed", s2: "mohammed", want: 1},
		{name: "completely different", s1: "abc", s2: "xyz", want: 3},
		{name: "arabic strings", s1: "أحمد", s2: "احمد", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevenshteinDistance(tt.s1, tt.s2); got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"ahmed mohamed", "ahmed mohammed"},
		{"", "khalid"},
		{"أحمد محمد", "احمد محمد"},
	}
	for _, pair := range pairs {
		a := LevenshteinDistance(pair[0], pair[1])
		b := LevenshteinDistance(pair[1], pair[0])
		if a != b {
			t.Errorf("LevenshteinDistance(%q, %q) = %d but reversed = %d", pair[0], pair[1], a, b)
		}
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want float64
	}{
		{name: "identical", s1: "ahmed", s2: "ahmed", want: 1.0},
		{name: "both empty", s1: "", s2: "", want: 1.0},
		{name: "one empty", s1: "ahmed", s2: "", want: 0.0},
		{name: "completely different same length", s1: "abc", s2: "xyz", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevenshteinSimilarity(tt.s1, tt.s2); got != tt.want {
				t.Errorf("LevenshteinSimilarity(%q, %q) = %v, want %v", tt.s1, tt.s2, got, tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want int
	}{
		{name: "identical", s1: "Ahmed Mohamed", s2: "Ahmed Mohamed", want: 100},
		{name: "near duplicate", s1: "Ahmed Mohamed", s2: "Ahmed Mohammed", want: 93},
		{name: "unrelated", s1: "Ahmed Mohamed", s2: "Khalid Otaibi", want: 23},
		{name: "one empty", s1: "Ahmed", s2: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.s1, tt.s2); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
			}
			if got := Ratio(tt.s2, tt.s1); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d (symmetry)", tt.s2, tt.s1, got, tt.want)
			}
		})
	}
}
