// Package lang implements the grammar scoper: parsing input with a
// tree-sitter grammar, running a compiled query, and narrowing scope to the
// union of captured byte ranges (optionally inverted, optionally subtracting
// an ignore-capture negative query).
package lang

import (
	"context"
	"strings"

	"github.com/go-srgn/srgn/pkg/ranges"
	"github.com/go-srgn/srgn/pkg/scope"
	"github.com/go-srgn/srgn/pkg/scoping/lang/queries"
	"github.com/go-srgn/srgn/pkg/treesitter"
)

// Spec identifies a query: either a premade query by name, or a raw
// S-expression supplied by the user (the escape hatch). Invert is handled by
// the caller wrapping the resulting Scoper in scope.Invert, not here.
type Spec struct {
	Language treesitter.Language
	Name     string // premade query name; ignored if Raw != ""
	Raw      string // raw S-expression; takes precedence over Name
}

// Scoper narrows scope to a compiled tree-sitter query's captures.
type Scoper struct {
	backend  treesitter.Backend
	lang     treesitter.Language
	posQuery treesitter.Query
	negQuery treesitter.Query
}

// Compile resolves spec's query (premade or raw), compiles it against the
// backend, and — if the query declares any Ignore-prefixed captures —
// compiles a second, "negative" query that reports only those captures, to
// be subtracted from the positive result at scope time.
func Compile(backend treesitter.Backend, spec Spec) (*Scoper, error) {
	pattern := spec.Raw
	if pattern == "" {
		p, err := queries.Lookup(spec.Language, spec.Name)
		if err != nil {
			return nil, err
		}
		pattern = p
	}

	pos, err := backend.NewQuery(spec.Language, pattern)
	if err != nil {
		return nil, err
	}

	var neg treesitter.Query
	hasIgnored := false
	for _, name := range pos.CaptureNames() {
		if strings.HasPrefix(name, queries.Ignore) {
			hasIgnored = true
			break
		}
	}
	if hasIgnored {
		neg, err = backend.NewQuery(spec.Language, pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range neg.CaptureNames() {
			if !strings.HasPrefix(name, queries.Ignore) {
				neg.DisableCapture(name)
			}
		}
	}

	return &Scoper{
		backend:  backend,
		lang:     spec.Language,
		posQuery: pos,
		negQuery: neg,
	}, nil
}

// Close releases the compiled queries.
func (s *Scoper) Close() {
	s.posQuery.Close()
	if s.negQuery != nil {
		s.negQuery.Close()
	}
}

// Scope implements scope.Scoper: parse the input with the language's
// grammar, collect the positive query's captured ranges, subtract the
// negative query's captured ranges if one exists, then emit In/Out runs.
func (s *Scoper) Scope(text string) ([]scope.Run, error) {
	parser, err := s.backend.NewParser(s.lang)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	tree, err := parser.ParseString(context.Background(), text)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()

	in, err := s.runQuery(s.posQuery, root)
	if err != nil {
		return nil, err
	}

	if s.negQuery != nil {
		out, err := s.runQuery(s.negQuery, root)
		if err != nil {
			return nil, err
		}
		in = in.Subtract(out)
	}

	return buildRuns(text, in), nil
}

func (s *Scoper) runQuery(q treesitter.Query, root treesitter.Node) (ranges.Set, error) {
	cursor, err := s.backend.NewQueryCursor()
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	cursor.Exec(q, root)

	var set ranges.Set
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			set.Add(ranges.Range{Start: int(c.Node.StartByte()), End: int(c.Node.EndByte())})
		}
	}
	set.Merge()
	return set, nil
}

// buildRuns turns a merged set of captured byte ranges into an alternating
// run sequence over text: gaps are Out, captured spans are In. Callers that
// need the query inverted wrap the Scoper in
// scope.Invert, which swaps In/Out uniformly after the fact — equivalent to
// swapping here, without duplicating the swap logic.
func buildRuns(text string, covered ranges.Set) []scope.Run {
	var runs []scope.Run
	pos := 0

	emit := func(start, end int, in bool) {
		if start < end {
			runs = append(runs, scope.Run{In: in, Text: text[start:end]})
		}
	}

	for _, r := range covered {
		emit(pos, r.Start, false) // gap before this capture
		emit(r.Start, r.End, true) // the capture itself
		pos = r.End
	}
	emit(pos, len(text), false)

	return runs
}
