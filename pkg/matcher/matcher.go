// Package matcher ranks discovered projects against a user pattern.
//
// Matching is fuzzy subsequence matching with smart case over the project
// display paths. The matcher is a pure function over its inputs: it never
// touches the filesystem and can be re-invoked with different patterns
// against the same project set.
package matcher

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"thoreinstein.com/pj/pkg/discovery"
)

// Result pairs a project with its match score. Scores are non-negative;
// higher means a stronger match.
type Result struct {
	Project discovery.Project
	Score   int
}

// projectSource adapts a project slice for fuzzy.FindFrom.
type projectSource []discovery.Project

func (s projectSource) String(i int) string { return s[i].DisplayPath }
func (s projectSource) Len() int            { return len(s) }

// Score tiers layered over the library's fuzzy score. An exact display-path
// equality beats everything; a contiguous substring match beats any
// scattered-character match (the library's separator bonuses can otherwise
// let a scattered match with well-aligned segments sneak ahead). Both are
// large enough to dominate any fuzzy score on realistic paths.
const (
	exactMatchBonus = 1 << 20
	substringBonus  = 1 << 10
)

// Match returns the projects matching pattern, strongest first. Ties are
// broken by shorter display path, then lexical display-path order, so the
// ranking is deterministic. Projects that do not match are absent from the
// result. An empty pattern returns every project in lexical order.
func Match(projects []discovery.Project, pattern string) []Result {
	if pattern == "" {
		return listAll(projects)
	}

	// Smart case: a pattern with any uppercase is matched case-sensitively.
	caseSensitive := pattern != strings.ToLower(pattern)

	matches := fuzzy.FindFrom(pattern, projectSource(projects))

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		p := projects[m.Index]
		// The library matches case-insensitively, so in case-sensitive mode
		// a candidate must also contain the pattern as an exact-case
		// subsequence.
		if caseSensitive && !isSubsequence(pattern, p.DisplayPath) {
			continue
		}
		score := m.Score
		switch {
		case isExact(pattern, p.DisplayPath, caseSensitive):
			score += exactMatchBonus
		case containsSubstring(pattern, p.DisplayPath, caseSensitive):
			score += substringBonus
		}
		results = append(results, Result{Project: p, Score: score})
	}

	normalizeScores(results)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		di, dj := results[i].Project.DisplayPath, results[j].Project.DisplayPath
		if len(di) != len(dj) {
			return len(di) < len(dj)
		}
		return di < dj
	})

	return results
}

// listAll returns every project with score zero, ordered by display path.
func listAll(projects []discovery.Project) []Result {
	results := make([]Result, len(projects))
	for i, p := range projects {
		results[i] = Result{Project: p}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Project.DisplayPath < results[j].Project.DisplayPath
	})
	return results
}

// isExact reports display-path equality under the active case mode.
func isExact(pattern, displayPath string, caseSensitive bool) bool {
	if caseSensitive {
		return displayPath == pattern
	}
	return strings.EqualFold(displayPath, pattern)
}

// containsSubstring reports whether displayPath contains pattern as a
// contiguous substring under the active case mode.
func containsSubstring(pattern, displayPath string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(displayPath, pattern)
	}
	return strings.Contains(strings.ToLower(displayPath), strings.ToLower(pattern))
}

// isSubsequence reports whether pattern occurs in s as an exact-case
// subsequence.
func isSubsequence(pattern, s string) bool {
	runes := []rune(s)
	i := 0
	for _, pr := range pattern {
		for i < len(runes) && runes[i] != pr {
			i++
		}
		if i == len(runes) {
			return false
		}
		i++
	}
	return true
}

// normalizeScores shifts scores so the weakest match sits at zero. The
// library hands out negative scores for penalized matches; the Result
// contract promises non-negative values.
func normalizeScores(results []Result) {
	min := 0
	for _, r := range results {
		if r.Score < min {
			min = r.Score
		}
	}
	if min == 0 {
		return
	}
	for i := range results {
		results[i].Score -= min
	}
}
