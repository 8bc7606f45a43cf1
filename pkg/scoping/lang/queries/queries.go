// Package queries is the premade query catalog keyed by (language, name),
// plus the raw-query escape hatch's shared ignore-capture convention.
package queries

import (
	"fmt"

	"github.com/go-srgn/srgn/pkg/treesitter"
	"github.com/go-srgn/srgn/pkg/util"
)

// Ignore is the capture-name prefix that marks a capture to be subtracted
// from its query's positive result, rather than contributing to scope.
const Ignore = "_SRGN_IGNORE"

var catalog = map[treesitter.Language]map[string]string{
	treesitter.Python:     pythonQueries,
	treesitter.Go:         goQueries,
	treesitter.Rust:       rustQueries,
	treesitter.TypeScript: typescriptQueries,
	treesitter.CSharp:     csharpQueries,
}

// Lookup returns the premade query string for (lang, name).
func Lookup(lang treesitter.Language, name string) (string, error) {
	byName, ok := catalog[lang]
	if !ok {
		return "", fmt.Errorf("no premade queries for language %q", lang)
	}
	q, ok := byName[name]
	if !ok {
		return "", fmt.Errorf("unknown query %q for language %q, have: %v", name, lang, Names(lang))
	}
	return q, nil
}

// Names returns the premade query names available for lang, sorted for
// stable --help/error-message output.
func Names(lang treesitter.Language) []string {
	byName, ok := catalog[lang]
	if !ok {
		return nil
	}
	return util.SortedKeys(byName)
}
