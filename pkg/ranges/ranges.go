// Package ranges provides a small set of non-overlapping, half-open byte
// ranges over a buffer, used by the grammar scoper to collect and combine
// byte spans before they are turned into scope runs.
package ranges

import "sort"

// Range is a half-open byte range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Set is an unordered collection of ranges. Merge must be called before the
// set can be treated as sorted and non-overlapping.
type Set []Range

// Add appends a range to the set.
func (s *Set) Add(r Range) {
	if r.Start >= r.End {
		return
	}
	*s = append(*s, r)
}

// Merge sorts the set by start offset and coalesces overlapping or adjacent
// ranges into maximal runs, mirroring how tree-sitter query captures arrive
// in an arbitrary, possibly overlapping order.
func (s *Set) Merge() {
	if len(*s) == 0 {
		return
	}
	sort.Slice(*s, func(i, j int) bool { return (*s)[i].Start < (*s)[j].Start })

	merged := (*s)[:1]
	for _, r := range (*s)[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	*s = merged
}

// Subtract removes every byte covered by other from s, assuming both sets
// have already been merged. The result is itself merged (sorted,
// non-overlapping).
func (s Set) Subtract(other Set) Set {
	var result Set
	oi := 0
	for _, r := range s {
		cur := r.Start
		for oi < len(other) && other[oi].End <= cur {
			oi++
		}
		j := oi
		for j < len(other) && other[j].Start < r.End {
			o := other[j]
			if o.Start > cur {
				result.Add(Range{Start: cur, End: min(o.Start, r.End)})
			}
			if o.End > cur {
				cur = o.End
			}
			j++
		}
		if cur < r.End {
			result.Add(Range{Start: cur, End: r.End})
		}
	}
	return result
}

// Intersect returns the byte ranges present in both s and other. Both must
// already be merged.
func (s Set) Intersect(other Set) Set {
	var result Set
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		a, b := s[i], other[j]
		start := max(a.Start, b.Start)
		end := min(a.End, b.End)
		if start < end {
			result.Add(Range{Start: start, End: end})
		}
		if a.End < b.End {
			i++
		} else {
			j++
		}
	}
	return result
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
