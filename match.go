package fuzzy

// Per-character score contributions. Every matched character earns the
// base; the rest depend on where and how it matched.
const (
	// bonusBase is earned by every matched character.
	bonusBase = 1

	// bonusCaseMatch is earned when the target character matches the
	// pattern character's original case, not just its folded form.
	bonusCaseMatch = 1

	// bonusConsecutive is earned when a match directly follows the
	// previous matched character in the target.
	bonusConsecutive = 3

	// bonusBoundary is earned for matching at a word boundary: the start
	// of the target, after a non-alphanumeric character, or at a
	// lower-to-upper case transition.
	bonusBoundary = 2
)

// Result describes one successful match of a pattern against a target.
type Result struct {
	// Score ranks relevance. It is meaningful only relative to other
	// Results produced for the same pattern.
	Score int

	// Indices holds the rune positions of the matched characters in the
	// target, strictly increasing, one per pattern rune. Empty for the
	// empty pattern.
	Indices []int
}

// Match reports whether pattern is an ordered, case-insensitive
// subsequence of target. The empty pattern matches everything with a zero
// score and no indices.
func Match(pattern, target string) (Result, bool) {
	return New(pattern).Match(target)
}

// Matches reports whether pattern matches target.
func Matches(pattern, target string) bool {
	_, ok := New(pattern).Match(target)
	return ok
}

// Score returns the match score for pattern against target, or 0 when
// there is no match.
func Score(pattern, target string) int {
	r, ok := New(pattern).Match(target)
	if !ok {
		return 0
	}
	return r.Score
}
