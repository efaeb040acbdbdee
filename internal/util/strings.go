// Package util provides small string helpers shared across netmon.
package util

import (
	"sort"
	"strings"
)

// maxSuggestDistance is the largest edit distance SuggestSimilar accepts.
const maxSuggestDistance = 2

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// LevenshteinDistance returns the number of single-character insertions,
// deletions and substitutions needed to turn a into b. It is case-sensitive.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows of the edit matrix.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// SuggestSimilar returns up to max candidates within a small edit distance of
// input, closest first. Matching ignores case. Returns nil when nothing is
// close enough.
func SuggestSimilar(input string, candidates []string, max int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(candidates) == 0 || max <= 0 {
		return nil
	}

	type match struct {
		candidate string
		distance  int
	}

	var matches []match
	for _, c := range candidates {
		d := LevenshteinDistance(input, strings.ToLower(c))
		if d <= maxSuggestDistance {
			matches = append(matches, match{candidate: c, distance: d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	if len(matches) > max {
		matches = matches[:max]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.candidate
	}
	return result
}
