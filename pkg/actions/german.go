package actions

import "github.com/go-srgn/srgn/pkg/german"

// German restores ä/ö/ü/ß spellings from their ae/oe/ue/ss ASCII
// transliterations, consulting a word-list oracle.
type German struct {
	WordList german.WordList
	Policy   german.Policy
}

// Apply implements Action.
func (g German) Apply(text string) string {
	wl := g.WordList
	if wl == nil {
		wl = german.DefaultWordList()
	}
	return german.Restore(text, wl, g.Policy)
}

var _ Action = German{}
