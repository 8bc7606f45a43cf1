// Package pipeline orchestrates scope narrowing and action application for
// a single input: grammar scopers narrow first (regardless of CLI order),
// then the regex scope, then the fixed-order action chain runs over
// whatever remains in scope.
package pipeline

import (
	"strings"

	"github.com/go-srgn/srgn/pkg/actions"
	"github.com/go-srgn/srgn/pkg/scope"
)

// Span is one in-scope run reported by search mode, with the 1-based line
// on which it starts in the original input.
type Span struct {
	Line int
	Text string
}

// Result is the outcome of running the pipeline over one input.
type Result struct {
	// Output is the reassembled string after actions ran. In search mode
	// Output is unset; Spans carries the result instead.
	Output string

	// Matched reports whether any in-scope run of non-zero length
	// survived narrowing.
	Matched bool

	// Spans is populated only in search mode (scope given, no actions).
	Spans []Span
}

// Pipeline holds the compiled, immutable configuration for one invocation:
// grammar scopers (already order-fixed ahead of the regex scope per §4.3),
// an optional regex scope, whether to squeeze consecutive in-scope runs, and
// the fixed-order action chain.
type Pipeline struct {
	GrammarScopers []scope.Scoper
	RegexScoper    scope.Scoper // nil: no regex narrowing
	Squeeze        bool
	Actions        actions.Chain
	SearchMode     bool
}

// Run executes the pipeline contract: narrow, squeeze, (apply actions |
// report spans), reassemble.
func (p *Pipeline) Run(input string) (Result, error) {
	s := scope.FromWhole(input)

	var err error
	for _, g := range p.GrammarScopers {
		s, err = s.Narrow(g)
		if err != nil {
			return Result{}, err
		}
	}
	if p.RegexScoper != nil {
		s, err = s.Narrow(p.RegexScoper)
		if err != nil {
			return Result{}, err
		}
	}

	if !s.HasIn() {
		return Result{Output: input, Matched: false}, nil
	}

	if p.Squeeze {
		s = s.Squeeze()
	}

	if p.SearchMode {
		return Result{Matched: true, Spans: collectSpans(input, s)}, nil
	}

	output := s.Transform(p.Actions.Apply)
	return Result{Output: output, Matched: true}, nil
}

func collectSpans(source string, s *scope.RangedScope) []Span {
	var spans []Span
	pos := 0
	for _, r := range s.Runs() {
		if r.In && r.Text != "" {
			spans = append(spans, Span{Line: lineAt(source, pos), Text: r.Text})
		}
		pos += len(r.Text)
	}
	return spans
}

func lineAt(source string, byteOffset int) int {
	return 1 + strings.Count(source[:byteOffset], "\n")
}
