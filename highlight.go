package fuzzy

import "strings"

// Spans coalesces Indices into contiguous half-open [start, end) rune
// ranges, in order. Highlight renderers usually want runs rather than
// individual positions.
func (r Result) Spans() [][2]int {
	if len(r.Indices) == 0 {
		return nil
	}
	spans := make([][2]int, 0, len(r.Indices))
	start := r.Indices[0]
	end := start + 1
	for _, idx := range r.Indices[1:] {
		if idx == end {
			end++
			continue
		}
		spans = append(spans, [2]int{start, end})
		start, end = idx, idx+1
	}
	return append(spans, [2]int{start, end})
}

// Highlight rebuilds target with wrap applied to each contiguous run of
// matched runes. Styling stays with the caller: wrap receives a matched
// run and returns its decorated form.
func Highlight(target string, indices []int, wrap func(string) string) string {
	if len(indices) == 0 {
		return target
	}

	runes := []rune(target)
	var sb strings.Builder
	last := 0
	for _, sp := range (Result{Indices: indices}).Spans() {
		sb.WriteString(string(runes[last:sp[0]]))
		sb.WriteString(wrap(string(runes[sp[0]:sp[1]])))
		last = sp[1]
	}
	sb.WriteString(string(runes[last:]))
	return sb.String()
}
