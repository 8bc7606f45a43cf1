// Package regexscope implements the regex scoper: pattern matching over
// input text using a backreference- and lookaround-capable engine, narrowing
// a RangedScope to matched text (or, when the pattern has capturing groups,
// to the individual code points captured).
package regexscope

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/go-srgn/srgn/pkg/scope"
	"github.com/go-srgn/srgn/pkg/util"
)

// posixClasses maps POSIX bracket-expression classes (e.g. "[[:alnum:]]",
// a syntax regexp2's .NET-derived engine does not understand natively) to
// an equivalent character range, substituted in place before compilation.
var posixClasses = map[string]string{
	"[:alnum:]":  "a-zA-Z0-9",
	"[:alpha:]":  "a-zA-Z",
	"[:digit:]":  "0-9",
	"[:upper:]":  "A-Z",
	"[:lower:]":  "a-z",
	"[:space:]":  `\s`,
	"[:punct:]":  `!-/:-@\[-` + "`" + `{-~`,
	"[:xdigit:]": "0-9a-fA-F",
}

func expandPOSIXClasses(pattern string) string {
	// Iterate in a fixed order so substitution is deterministic even though
	// map iteration order is not.
	for _, posix := range util.SortedKeys(posixClasses) {
		pattern = strings.ReplaceAll(pattern, posix, posixClasses[posix])
	}
	return pattern
}

// Scoper narrows scope to regex matches within each in-scope run.
type Scoper struct {
	re        *regexp2.Regexp
	hasGroups bool
}

// New compiles pattern with full backreference/lookaround support. If
// literal is true, pattern is escaped first so it is matched verbatim.
func New(pattern string, literal bool) (*Scoper, error) {
	if literal {
		pattern = regexp.QuoteMeta(pattern)
	} else {
		pattern = expandPOSIXClasses(pattern)
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}

	groupCount := len(re.GetGroupNumbers()) - 1 // group 0 is the whole match
	return &Scoper{re: re, hasGroups: groupCount > 0}, nil
}

// HasCaptureGroups reports whether the compiled pattern has one or more
// capturing groups, which determines per-character vs whole-match scoping
// and, downstream, Replace's per-character repetition behavior.
func (s *Scoper) HasCaptureGroups() bool { return s.hasGroups }

// Scope implements scope.Scoper.
//
// FindNextMatch continues searching from the end of the previous match
// against the *original, unsliced* text, which both keeps lookaround
// constructs working against their true surrounding context and guarantees
// forward progress: regexp2 auto-advances by one code point after a
// zero-width match so the next search cannot return the same position.
func (s *Scoper) Scope(text string) ([]scope.Run, error) {
	var runs []scope.Run
	pos := 0

	m, err := s.re.FindStringMatch(text)
	if err != nil {
		return nil, fmt.Errorf("matching regex: %w", err)
	}

	for m != nil {
		start, end := m.Index, m.Index+m.Length

		if start > pos {
			runs = append(runs, scope.Run{In: false, Text: text[pos:start]})
		}

		switch {
		case start == end:
			// Zero-width match: contributes no In run.
		case s.hasGroups:
			runs = append(runs, capturedCodePointRuns(m, text, start, end)...)
		default:
			runs = append(runs, scope.Run{In: true, Text: text[start:end]})
		}

		pos = end

		m, err = s.re.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("matching regex: %w", err)
		}
	}

	if pos < len(text) {
		runs = append(runs, scope.Run{In: false, Text: text[pos:]})
	}
	return runs, nil
}

// capturedCodePointRuns splits every capturing group's matched text into
// individual code-point In runs, per §4.2: "the captured substrings are each
// split into individual code-point runs, and each code point becomes its own
// In run." Text inside the match but outside any capture is Out.
func capturedCodePointRuns(m *regexp2.Match, text string, matchStart, matchEnd int) []scope.Run {
	type span struct{ start, end int }
	var spans []span
	for _, g := range m.Groups() {
		if g.Name == "0" {
			continue // whole-match pseudo-group
		}
		for _, c := range g.Captures {
			if c.Length > 0 {
				spans = append(spans, span{start: c.Index, end: c.Index + c.Length})
			}
		}
	}

	// Captures are not guaranteed to arrive in source order (alternation,
	// repeated groups); sort so we can walk the match left to right.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j-1].start > spans[j].start; j-- {
			spans[j-1], spans[j] = spans[j], spans[j-1]
		}
	}

	var runs []scope.Run
	pos := matchStart
	for _, sp := range spans {
		if sp.start < pos {
			continue // overlapping capture, already covered
		}
		if sp.start > pos {
			runs = append(runs, scope.Run{In: false, Text: text[pos:sp.start]})
		}
		for _, r := range text[sp.start:sp.end] {
			runs = append(runs, scope.Run{In: true, Text: string(r)})
		}
		pos = sp.end
	}
	if pos < matchEnd {
		runs = append(runs, scope.Run{In: false, Text: text[pos:matchEnd]})
	}
	return runs
}
