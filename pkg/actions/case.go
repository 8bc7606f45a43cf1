package actions

import (
	"strings"
	"unicode"
)

// Upper uppercases every letter in the in-scope text.
type Upper struct{}

// Apply implements Action.
func (Upper) Apply(text string) string { return strings.ToUpper(text) }

var _ Action = Upper{}

// Lower lowercases every letter in the in-scope text.
type Lower struct{}

// Apply implements Action.
func (Lower) Apply(text string) string { return strings.ToLower(text) }

var _ Action = Lower{}

// Titlecase uppercases the first letter of each word and lowercases the
// rest, where a word is a maximal run of letters.
type Titlecase struct{}

// Apply implements Action.
func (Titlecase) Apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	startOfWord := true
	for _, r := range text {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startOfWord = false
	}
	return b.String()
}

var _ Action = Titlecase{}
