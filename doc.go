// Package fuzzy provides fuzzy subsequence matching and ranking for
// interactive search and filter widgets.
//
// A pattern matches a target when every pattern character appears in the
// target in the same relative order, case-insensitively, with arbitrary
// characters allowed in between. Successful matches carry a score and the
// rune positions of the matched characters, which callers can feed to a
// highlight renderer.
//
// # Scoring
//
// Each matched character contributes additively:
//   - +1 base per matched character
//   - +1 when the target character matches the pattern's original case
//   - +3 when the match is adjacent to the previous matched character
//   - +2 at a word boundary (string start, after a non-alphanumeric
//     character, or at a lower-to-upper case transition)
//
// Matching is greedy and non-backtracking: each pattern character binds to
// the first eligible target position, so when several alignments exist the
// reported score is not necessarily the global maximum. This keeps every
// call O(len(target)) and is deliberate; a weighted-alignment variant would
// cost O(pattern x target) per candidate.
//
// # Usage
//
// One-shot matching:
//
//	if r, ok := fuzzy.Match("fzf", "fuzzy finder"); ok {
//	    fmt.Println(r.Score, r.Indices) // positive score, [0 2 6]
//	}
//
// Filtering a candidate list, best matches first:
//
//	for _, r := range fuzzy.Filter("app", []string{"apple", "banana", "application"}) {
//	    fmt.Println(r.Candidate)
//	}
//
// When the same pattern is applied to many targets, build a Matcher once so
// the pattern is case-folded a single time:
//
//	m := fuzzy.New(query).WithMinScore(3)
//	for _, label := range labels {
//	    if r, ok := m.Match(label); ok {
//	        show(label, r.Indices)
//	    }
//	}
//
// # Thread safety
//
// A Matcher is an immutable value: once constructed it is safe to share
// across goroutines and to call concurrently without synchronization.
//
// # Granularity
//
// Matching, indices, and boundaries operate per Unicode scalar value
// (rune), not per grapheme cluster. Multi-rune graphemes such as combining
// marks can match or highlight at a sub-grapheme boundary; this is an
// accepted limitation.
package fuzzy
