// Package scope implements the RangedScope view model: an input string
// decomposed into an alternating sequence of in-scope and out-of-scope runs,
// narrowed by successive scopers and finally reassembled after actions have
// transformed each in-scope run.
package scope

// Run is one labeled slice of an input string. Concatenating the Text of
// every run, in order, always reconstructs the original input exactly.
type Run struct {
	In   bool
	Text string
}

// Scoper produces a partition of text into an ordered sequence of runs that,
// concatenated, reconstruct text exactly. It is applied only to runs already
// in scope ("exploding" them further), never to out-of-scope runs, which is
// how successive scopers compose by narrowing rather than widening.
type Scoper interface {
	Scope(text string) ([]Run, error)
}

// ScoperFunc adapts a plain function to the Scoper interface.
type ScoperFunc func(text string) ([]Run, error)

// Scope implements Scoper.
func (f ScoperFunc) Scope(text string) ([]Run, error) { return f(text) }

// RangedScope is an ordered, non-overlapping, covering partition of a
// string's bytes into In/Out runs.
type RangedScope struct {
	source string
	runs   []Run
}

// FromWhole returns a RangedScope with the entire input in scope.
func FromWhole(source string) *RangedScope {
	if source == "" {
		return &RangedScope{source: source}
	}
	return &RangedScope{source: source, runs: []Run{{In: true, Text: source}}}
}

// FromEmpty returns a RangedScope with nothing in scope.
func FromEmpty(source string) *RangedScope {
	if source == "" {
		return &RangedScope{source: source}
	}
	return &RangedScope{source: source, runs: []Run{{In: false, Text: source}}}
}

// Source returns the original, unmodified input string.
func (s *RangedScope) Source() string { return s.source }

// Runs returns the current run sequence.
func (s *RangedScope) Runs() []Run { return s.runs }

// HasIn reports whether any run of non-zero length is in scope.
func (s *RangedScope) HasIn() bool {
	for _, r := range s.runs {
		if r.In && len(r.Text) > 0 {
			return true
		}
	}
	return false
}

// Narrow applies a scoper to every in-scope run, replacing it with the
// scoper's own sub-partition of that run's text. Out-of-scope runs pass
// through untouched. The result's in-scope byte positions are therefore
// always a subset of the receiver's — scope only shrinks.
func (s *RangedScope) Narrow(scoper Scoper) (*RangedScope, error) {
	if len(s.runs) == 0 {
		return s, nil
	}

	next := make([]Run, 0, len(s.runs))
	for _, r := range s.runs {
		if !r.In || r.Text == "" {
			next = append(next, r)
			continue
		}
		sub, err := scoper.Scope(r.Text)
		if err != nil {
			return nil, err
		}
		next = append(next, sub...)
	}
	return &RangedScope{source: s.source, runs: next}, nil
}

// Squeeze collapses every maximal run of consecutive in-scope Runs down to
// just the first of that run, discarding the rest outright. This is a
// structural operation on the run sequence, not a per-run character dedup:
// two adjacent In runs are squeezed away regardless of whether their text is
// equal, since regex scopers without quantifiers (or with capturing groups)
// naturally produce one run per matched code point, and "consecutive
// occurrences of scope" means consecutive runs, not consecutive identical
// characters.
func (s *RangedScope) Squeeze() *RangedScope {
	if len(s.runs) == 0 {
		return s
	}
	next := make([]Run, 0, len(s.runs))
	prevWasIn := false
	for _, r := range s.runs {
		if !(prevWasIn && r.In) {
			next = append(next, r)
		}
		prevWasIn = r.In
	}
	return &RangedScope{source: s.source, runs: next}
}

// Invert wraps a scoper so its In/Out labels are swapped before the result
// is used to narrow, for example to negate a grammar scoper's selection.
func Invert(scoper Scoper) Scoper {
	return ScoperFunc(func(text string) ([]Run, error) {
		runs, err := scoper.Scope(text)
		if err != nil {
			return nil, err
		}
		inverted := make([]Run, len(runs))
		for i, r := range runs {
			inverted[i] = Run{In: !r.In, Text: r.Text}
		}
		return inverted, nil
	})
}

// Transform maps fn over every in-scope run's text and reassembles the full
// string, leaving out-of-scope runs byte-for-byte unchanged. This is the only
// way actions touch input text.
func (s *RangedScope) Transform(fn func(string) string) string {
	if len(s.runs) == 0 {
		return s.source
	}
	var out []byte
	for _, r := range s.runs {
		if r.In {
			out = append(out, fn(r.Text)...)
		} else {
			out = append(out, r.Text...)
		}
	}
	return string(out)
}

// Reassemble concatenates all runs unchanged, verifying the partition
// invariant (used by tests and as a sanity check after narrowing).
func (s *RangedScope) Reassemble() string {
	return s.Transform(func(text string) string { return text })
}
