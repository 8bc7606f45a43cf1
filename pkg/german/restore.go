// Package german implements the umlaut-restoration action: given ASCII
// transliterations (ae/oe/ue/ss), restore the native ä/ö/ü/ß spellings by
// consulting a WordList oracle over candidate substitutions.
package german

import (
	"sort"
	"strings"
	"unicode"
)

// Policy selects how candidate substitutions are resolved against the
// oracle.
type Policy int

const (
	// PolicyDefault is greedy: among substitutions that yield a known word,
	// apply the one replacing the most sites, breaking ties by preferring
	// the leftmost substituted site.
	PolicyDefault Policy = iota

	// PolicyPreferOriginal keeps the original spelling unless it is
	// unknown to the oracle and exactly one substitution yields a known
	// word.
	PolicyPreferOriginal

	// PolicyNaive applies every applicable substitution unconditionally,
	// ignoring the oracle entirely.
	PolicyNaive
)

type pattern struct {
	ascii rune // the second of the two-letter ascii digraph ("e" in "ae"/"oe"/"ue", "s" in "ss")
	first rune // the first letter of the digraph
	repl  rune // lowercase umlaut replacement
}

var patterns = []pattern{
	{first: 'a', ascii: 'e', repl: 'ä'},
	{first: 'o', ascii: 'e', repl: 'ö'},
	{first: 'u', ascii: 'e', repl: 'ü'},
	{first: 's', ascii: 's', repl: 'ß'},
}

type site struct {
	start, end int // rune offsets [start, end) into the candidate word, end == start+2
	repl       rune
}

// findSites scans word (as runes) left to right for non-overlapping
// ae/oe/ue/ss digraphs, case-insensitively.
func findSites(word []rune) []site {
	var sites []site
	for i := 0; i+1 < len(word); {
		a, b := unicode.ToLower(word[i]), unicode.ToLower(word[i+1])
		matched := false
		for _, p := range patterns {
			if a == p.first && b == p.ascii {
				sites = append(sites, site{start: i, end: i + 2, repl: p.repl})
				i += 2
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return sites
}

// replacementCase returns the umlaut rune cased to match the digraph it
// replaces: uppercase if the digraph's first letter was uppercase
// ("Ae"/"AE" both restore to "Ä"), lowercase otherwise.
func replacementCase(word []rune, s site) rune {
	if unicode.IsUpper(word[s.start]) {
		return unicode.ToUpper(s.repl)
	}
	return s.repl
}

// applySubset builds the candidate word produced by substituting exactly
// the sites named by mask (bit i <-> sites[i]), leaving all other sites as
// their original literal text.
func applySubset(word []rune, sites []site, mask int) string {
	var b strings.Builder
	pos := 0
	for i, s := range sites {
		b.WriteString(string(word[pos:s.start]))
		if mask&(1<<uint(i)) != 0 {
			b.WriteRune(replacementCase(word, s))
		} else {
			b.WriteString(string(word[s.start:s.end]))
		}
		pos = s.end
	}
	b.WriteString(string(word[pos:]))
	return b.String()
}

func popcount(mask int) int {
	n := 0
	for mask > 0 {
		n += mask & 1
		mask >>= 1
	}
	return n
}

// includedIndices returns, in ascending order, the site indices set in mask.
func includedIndices(mask, n int) []int {
	var idx []int
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// lessByLeftmostFirst implements the tie-break rule "ties break by
// leftmost-first site": among masks with equal popcount, prefer the one
// whose included site indices, compared element-wise from the left, are
// smaller first (i.e. prefers substituting the earliest sites).
func lessByLeftmostFirst(a, b, n int) bool {
	ia, ib := includedIndices(a, n), includedIndices(b, n)
	for i := 0; i < len(ia) && i < len(ib); i++ {
		if ia[i] != ib[i] {
			return ia[i] < ib[i]
		}
	}
	return len(ia) < len(ib)
}

// restoreWord applies the umlaut-restoration algorithm to a single
// candidate word (a maximal run of alphabetics), per policy.
func restoreWord(word string, wl WordList, policy Policy) string {
	runes := []rune(word)
	sites := findSites(runes)
	if len(sites) == 0 {
		return word
	}

	if policy == PolicyNaive {
		return applySubset(runes, sites, (1<<uint(len(sites)))-1)
	}

	allMasks := make([]int, 0, (1<<uint(len(sites)))-1)
	for mask := 1; mask < (1 << uint(len(sites))); mask++ {
		allMasks = append(allMasks, mask)
	}

	switch policy {
	case PolicyPreferOriginal:
		if wl.Contains(word) {
			return word
		}
		var matches []int
		for _, mask := range allMasks {
			if wl.Contains(applySubset(runes, sites, mask)) {
				matches = append(matches, mask)
			}
		}
		if len(matches) == 1 {
			return applySubset(runes, sites, matches[0])
		}
		return compoundFallback(word, wl, policy)

	default: // PolicyDefault: greedy
		sort.Slice(allMasks, func(i, j int) bool {
			pi, pj := popcount(allMasks[i]), popcount(allMasks[j])
			if pi != pj {
				return pi > pj
			}
			return lessByLeftmostFirst(allMasks[i], allMasks[j], len(sites))
		})
		for _, mask := range allMasks {
			if wl.Contains(applySubset(runes, sites, mask)) {
				return applySubset(runes, sites, mask)
			}
		}
		return compoundFallback(word, wl, policy)
	}
}

// compoundFallback splits word on its longest dictionary-known prefix and
// recurses on the remainder, per "compound words are handled by
// longest-prefix dictionary lookup". Returns word unchanged if no prefix is
// known.
func compoundFallback(word string, wl WordList, policy Policy) string {
	runes := []rune(word)
	prefixLen, ok := wl.LongestKnownPrefix(word)
	if !ok || prefixLen == 0 || prefixLen >= len(runes) {
		return word
	}
	prefix := string(runes[:prefixLen])
	rest := string(runes[prefixLen:])
	return prefix + restoreWord(rest, wl, policy)
}

// Restore scans text for maximal alphabetic runs and applies
// umlaut-restoration to each, leaving all non-alphabetic characters
// unchanged.
func Restore(text string, wl WordList, policy Policy) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsLetter(runes[j]) {
			j++
		}
		b.WriteString(restoreWord(string(runes[i:j]), wl, policy))
		i = j
	}
	return b.String()
}
