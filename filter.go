package fuzzy

import "sort"

// Item pairs a searchable label with arbitrary caller data that rides
// along through filtering (a command ID, a tree node, a file handle).
type Item struct {
	// Text is the string matched against.
	Text string

	// Data is opaque to the engine.
	Data any
}

// Ranked pairs a matching candidate with its Result.
type Ranked struct {
	Candidate string
	Result
}

// RankedItem pairs a matching Item with its Result.
type RankedItem struct {
	Item Item
	Result
}

// Filter returns the candidates pattern matches, highest score first.
// Equal scores keep their input order, so a stable candidate list does
// not jitter between keystrokes.
func Filter(pattern string, candidates []string) []Ranked {
	return New(pattern).Filter(candidates)
}

// FilterStrings is Filter without match metadata: just the matching
// candidates, best first.
func FilterStrings(pattern string, candidates []string) []string {
	ranked := New(pattern).Filter(candidates)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Candidate
	}
	return out
}

// Filter evaluates every candidate against the held pattern and returns
// the matches sorted by descending score with a stable tie-break.
func (m Matcher) Filter(candidates []string) []Ranked {
	results := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if r, ok := m.Match(c); ok {
			results = append(results, Ranked{Candidate: c, Result: r})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// FilterItems is Filter over Items; matching runs against each item's
// Text and the item's Data is carried through untouched.
func (m Matcher) FilterItems(items []Item) []RankedItem {
	results := make([]RankedItem, 0, len(items))
	for _, it := range items {
		if r, ok := m.Match(it.Text); ok {
			results = append(results, RankedItem{Item: it, Result: r})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
