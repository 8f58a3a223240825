// Package algorithms provides the string-similarity primitives used by
// fuzzy duplicate detection.
package algorithms

import "math"

// LevenshteinDistance computes the standard edit distance between two
// strings, counted in runes.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	len1 := len(r1)
	len2 := len(r2)

	if len1 == 0 {
		return len2
	}
	if len2 == 0 {
		return len1
	}

	// Single-column variant: O(min) memory instead of a full matrix.
	column := make([]int, len1+1)
	for i := 1; i <= len1; i++ {
		column[i] = i
	}

	for x := 1; x <= len2; x++ {
		column[0] = x
		lastDiag := x - 1
		for y := 1; y <= len1; y++ {
			oldDiag := column[y]
			cost := 0
			if r1[y-1] != r2[x-1] {
				cost = 1
			}
			column[y] = min3(column[y]+1, column[y-1]+1, lastDiag+cost)
			lastDiag = oldDiag
		}
	}

	return column[len1]
}

// LevenshteinSimilarity normalizes the edit distance to [0.0, 1.0].
// Two empty strings are identical (1.0).
func LevenshteinSimilarity(s1, s2 string) float64 {
	maxLen := len([]rune(s1))
	if l2 := len([]rune(s2)); l2 > maxLen {
		maxLen = l2
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(LevenshteinDistance(s1, s2))/float64(maxLen)
}

// Ratio is LevenshteinSimilarity on a 0-100 integer scale, rounded to
// the nearest point. It is symmetric and sensitive to case and
// whitespace; callers normalize their inputs first.
func Ratio(s1, s2 string) int {
	return int(math.Round(LevenshteinSimilarity(s1, s2) * 100))
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
