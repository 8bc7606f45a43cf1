package german

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// WordList is the oracle consulted during umlaut restoration and compound
// splitting: does this word exist in the dictionary?
type WordList interface {
	// Contains reports whether word (case-insensitively) is a known word.
	Contains(word string) bool

	// LongestKnownPrefix returns the length, in runes, of the longest
	// dictionary-known prefix of word, or ok=false if none exists.
	LongestKnownPrefix(word string) (length int, ok bool)
}

// TrieWordList adapts a Trie to the WordList interface.
type TrieWordList struct {
	trie *Trie
}

// NewTrieWordList builds a WordList from a Trie.
func NewTrieWordList(t *Trie) *TrieWordList { return &TrieWordList{trie: t} }

// Contains implements WordList.
func (w *TrieWordList) Contains(word string) bool { return w.trie.Contains(word) }

// LongestKnownPrefix implements WordList.
func (w *TrieWordList) LongestKnownPrefix(word string) (int, bool) {
	return w.trie.LongestKnownPrefix(word)
}

// sampleWords is a small, hand-picked set of common German words containing
// umlauts and/or ß, sufficient to exercise the restoration algorithm and
// serve as a usable out-of-the-box default. It is not derived from, or a
// substitute for, any comprehensive or proprietary German dictionary.
var sampleWords = []string{
	"grüß", "grüße", "grüßt",
	"gott",
	"neueröffnung", "neueröffnungen",
	"eröffnung", "eröffnungen",
	"poet", "poeten",
	"und",
	"abenteuer", "abenteuergrütze",
	"grütze",
	"straße", "straßen",
	"fuß", "füße",
	"größe", "größer", "größte",
	"schön", "schöner", "schönste",
	"hören", "hört", "gehört",
	"können", "könnte", "konnte",
	"müssen", "müsste", "musste",
	"über", "überall",
	"für",
	"mögen", "möchte",
	"wäre", "wären",
	"bär", "bären",
	"käse",
	"süß", "süße", "süßer",
	"weiß", "weißt", "wissen",
	"maß", "masse",
	"busse", "buße",
	"spaß", "spaße",
}

// DefaultWordList returns the bundled sample WordList.
func DefaultWordList() WordList {
	return NewTrieWordList(NewTrie(sampleWords))
}

// LoadWordList reads a newline-delimited word list from path, one word per
// line, blank lines and lines starting with "#" ignored.
func LoadWordList(path string) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWordList(f)
}

// ParseWordList reads a newline-delimited word list from r.
func ParseWordList(r io.Reader) (WordList, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTrieWordList(NewTrie(words)), nil
}
