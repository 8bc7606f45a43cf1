package actions

import (
	"strings"
	"unicode/utf8"
)

// symbolTable is the fixed bijective ASCII-to-Unicode mapping. Order matters
// for the greedy-longest-match scan below: longer ASCII sequences must sort
// before any shorter sequence that is one of their prefixes (`--- ` before
// `-- `), so ambiguity always resolves to the longest applicable match.
var symbolTable = []struct {
	ascii   string
	unicode string
}{
	{"--->", "⟶"},
	{"<---", "⟵"},
	{"->", "→"},
	{"<-", "←"},
	{"=>", "⇒"},
	{"<=", "≤"},
	{">=", "≥"},
	{"!=", "≠"},
	{"---", "—"},
	{"--", "–"},
}

func init() {
	// Sort once, longest ASCII key first, so the greedy scan below always
	// prefers the longest match at a given position.
	for i := 1; i < len(symbolTable); i++ {
		for j := i; j > 0 && len(symbolTable[j-1].ascii) < len(symbolTable[j].ascii); j-- {
			symbolTable[j-1], symbolTable[j] = symbolTable[j], symbolTable[j-1]
		}
	}
}

// Symbols applies the fixed bijective ASCII<->Unicode symbol table via a
// table-driven, greedy-longest-match scan. With Invert set, the Unicode side
// is matched and replaced with its ASCII counterpart.
type Symbols struct {
	Invert bool
}

// Apply implements Action.
func (s Symbols) Apply(text string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		matched := false
		for _, entry := range symbolTable {
			from, to := entry.ascii, entry.unicode
			if s.Invert {
				from, to = entry.unicode, entry.ascii
			}
			if strings.HasPrefix(text[i:], from) {
				b.WriteString(to)
				i += len(from)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		b.WriteRune(r)
		i += size
	}

	return b.String()
}

var _ Action = Symbols{}
