package actions

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode NFD (canonical decomposition) and then drops
// every code point in the General Category M* (Mark), which strips
// combining diacritics while leaving already-precomposed or
// non-decomposable code points (e.g. "ł") unchanged.
type Normalize struct{}

// Apply implements Action.
func (Normalize) Apply(text string) string {
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var _ Action = Normalize{}
