package fuzzy

import "unicode"

// Matcher holds a pattern prepared for repeated matching. The pattern is
// case-folded once at construction rather than once per target, which
// matters when one query is applied to an entire candidate list.
//
// A Matcher is an immutable value. It is safe to copy, to share across
// goroutines, and to call concurrently without synchronization.
type Matcher struct {
	original []rune // pattern as typed, for the case-exact bonus
	folded   []rune // lowercased pattern, same length as original
	minScore int
}

// New builds a Matcher for pattern.
func New(pattern string) Matcher {
	original := []rune(pattern)
	folded := make([]rune, len(original))
	for i, r := range original {
		folded[i] = unicode.ToLower(r)
	}
	return Matcher{original: original, folded: folded}
}

// WithMinScore returns a copy of m that treats successful matches scoring
// below n as non-matches. The receiver is unchanged.
func (m Matcher) WithMinScore(n int) Matcher {
	m.minScore = n
	return m
}

// IsEmpty reports whether the held pattern has no characters. Callers
// typically skip filtering for an empty pattern and show the full list.
func (m Matcher) IsEmpty() bool {
	return len(m.folded) == 0
}

// Pattern returns the pattern as originally supplied.
func (m Matcher) Pattern() string {
	return string(m.original)
}

// Match evaluates a single target. The boolean is false when the pattern
// is not a subsequence of target or when the score falls below the
// minimum set by WithMinScore.
//
// The scan is greedy and non-backtracking: each pattern character binds to
// the first eligible target position, so the score is not necessarily the
// maximum over all valid alignments.
func (m Matcher) Match(target string) (Result, bool) {
	if m.IsEmpty() {
		if m.minScore > 0 {
			return Result{}, false
		}
		return Result{}, true
	}

	runes := []rune(target)
	if len(m.folded) > len(runes) {
		return Result{}, false
	}

	indices := make([]int, 0, len(m.folded))
	score := 0
	pi := 0

	for ti, tr := range runes {
		if unicode.ToLower(tr) != m.folded[pi] {
			continue
		}

		score += bonusBase
		if tr == m.original[pi] {
			score += bonusCaseMatch
		}
		if len(indices) > 0 && ti == indices[len(indices)-1]+1 {
			score += bonusConsecutive
		}
		if wordBoundary(runes, ti) {
			score += bonusBoundary
		}

		indices = append(indices, ti)
		pi++
		if pi == len(m.folded) {
			break
		}
	}

	if pi != len(m.folded) || score < m.minScore {
		return Result{}, false
	}
	return Result{Score: score, Indices: indices}, true
}

// wordBoundary reports whether position i begins a word segment: the
// string start, a position after a non-alphanumeric rune, or a
// lower-to-upper case transition (camelCase).
func wordBoundary(runes []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := runes[i-1]
	if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(runes[i])
}
