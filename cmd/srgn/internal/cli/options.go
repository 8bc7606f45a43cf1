// Package cli implements srgn's command-line interface.
package cli

import "github.com/go-srgn/srgn/pkg/treesitter"

// languageFlag holds one per-language scope modifier: either a premade
// query name or a raw S-expression (the latter takes precedence).
type languageFlag struct {
	lang      treesitter.Language
	flagName  string // e.g. "python"
	queryName string // --python <NAME>
	rawQuery  string // --python-query <S-EXPR>
}

// languageFlags enumerates the five languages with prepared queries,
// matching the CLI's per-language flags.
var languageFlags = []*languageFlag{
	{lang: treesitter.Python, flagName: "python"},
	{lang: treesitter.Go, flagName: "go"},
	{lang: treesitter.Rust, flagName: "rust"},
	{lang: treesitter.TypeScript, flagName: "typescript"},
	{lang: treesitter.CSharp, flagName: "csharp"},
}

// options holds every flag value for one invocation, populated directly
// from cobra/pflag — no file-based configuration layer.
type options struct {
	// Actions
	delete               bool
	squeeze              bool
	lower                bool
	upper                bool
	titlecase            bool
	normalize            bool
	symbols              bool
	symbolsInvert        bool
	german               bool
	germanNaive          bool
	germanPreferOriginal bool
	germanWordlist       string

	// Scope modifiers
	literalString bool

	// Batch
	files string

	// Exit policy
	failAny  bool
	failNone bool

	// Output
	completions string

	// Observability
	verbosity int
	logFormat string
}
