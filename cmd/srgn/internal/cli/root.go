package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-srgn/srgn/internal/errs"
	"github.com/go-srgn/srgn/internal/log"
	"github.com/go-srgn/srgn/pkg/actions"
	"github.com/go-srgn/srgn/pkg/driver"
	"github.com/go-srgn/srgn/pkg/german"
	"github.com/go-srgn/srgn/pkg/pipeline"
	"github.com/go-srgn/srgn/pkg/scope"
	"github.com/go-srgn/srgn/pkg/scoping/lang"
	"github.com/go-srgn/srgn/pkg/scoping/regexscope"
	"github.com/go-srgn/srgn/pkg/treesitter"
)

var opts options

var rootCmd = &cobra.Command{
	Use:   "srgn [flags] [SCOPE] [REPLACEMENT]",
	Short: "A grep-like tool that understands syntax trees",
	Long: `srgn combines regular-expression matching and language-grammar-aware
querying into a single notion of scope, then applies composable actions
(replace, delete, squeeze, case changes, Unicode normalization, symbol
mapping, German umlaut restoration) strictly within that scope.`,
	Args: cobra.MaximumNArgs(2),
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()

	flags.BoolVarP(&opts.delete, "delete", "d", false, "delete in-scope text instead of replacing it")
	flags.BoolVarP(&opts.squeeze, "squeeze-repeats", "s", false, "collapse runs of identical code points in scope")
	flags.BoolVar(&opts.lower, "lower", false, "lowercase in-scope text")
	flags.BoolVar(&opts.upper, "upper", false, "uppercase in-scope text")
	flags.BoolVar(&opts.titlecase, "titlecase", false, "titlecase in-scope text")
	flags.BoolVar(&opts.normalize, "normalize", false, "Unicode NFD-normalize in-scope text, stripping combining marks")
	flags.BoolVarP(&opts.symbols, "symbols", "S", false, "apply the bijective ASCII<->Unicode symbol table")
	flags.BoolVar(&opts.symbolsInvert, "symbols-invert", false, "invert the symbol table mapping")
	flags.BoolVarP(&opts.german, "german", "g", false, "restore ä/ö/ü/ß from ae/oe/ue/ss")
	flags.BoolVar(&opts.germanNaive, "german-naive", false, "apply every German substitution unconditionally, ignoring the word-list oracle")
	flags.BoolVar(&opts.germanPreferOriginal, "german-prefer-original", false, "prefer the original German spelling unless it is unknown and exactly one substitution is known")
	flags.StringVar(&opts.germanWordlist, "german-wordlist", "", "path to a newline-delimited German word list (default: small bundled sample)")

	flags.BoolVar(&opts.literalString, "literal-string", false, "match SCOPE literally instead of as a regular expression")

	for _, lf := range languageFlags {
		lf := lf
		flags.StringVar(&lf.queryName, lf.flagName, "", "scope to a premade "+lf.flagName+" query")
		flags.StringVar(&lf.rawQuery, lf.flagName+"-query", "", "scope to a raw tree-sitter S-expression query for "+lf.flagName)
	}

	flags.StringVar(&opts.files, "files", "", "glob pattern for multi-file, in-place mode")

	flags.BoolVar(&opts.failAny, "fail-any", false, "exit non-zero if any in-scope match occurred")
	flags.BoolVar(&opts.failNone, "fail-none", false, "exit non-zero if no in-scope match occurred")

	flags.StringVar(&opts.completions, "completions", "", "emit a shell completion script (bash|zsh|fish|powershell) and exit")

	rootCmd.PersistentFlags().IntVarP(&opts.verbosity, "verbosity", "v", 1,
		"verbosity level (0=error, 1=warn, 2=info, 3=debug, 4=trace)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	log.SetVerbosity(opts.verbosity)
	if opts.logFormat != "" {
		log.Init(opts.verbosity, opts.logFormat)
	}
}

// Execute runs the root command, mapping any returned error to its
// category's exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// RootCmd returns the root command, for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func exitCode(err error) int {
	var coded errs.Coded
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return errs.ExitConfig
}

func run(cmd *cobra.Command, args []string) error {
	if opts.completions != "" {
		return emitCompletions(cmd, opts.completions)
	}

	if err := validateExclusivity(args); err != nil {
		return err
	}

	backend, err := treesitter.NewBackendFromEnv()
	if err != nil {
		return errs.NewConfiguration("initializing tree-sitter backend", err)
	}
	defer backend.Close()

	grammarScopers, err := buildGrammarScopers(backend)
	if err != nil {
		return err
	}

	var regexScoper scope.Scoper
	if hasExplicitScope(args) {
		s, err := regexscope.New(args[0], opts.literalString)
		if err != nil {
			return errs.NewConfiguration("compiling scope pattern", err)
		}
		regexScoper = s
	}

	actionChain, err := buildActions(args)
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		GrammarScopers: grammarScopers,
		RegexScoper:    regexScoper,
		Squeeze:        opts.squeeze,
		Actions:        actionChain,
		SearchMode:     !opts.squeeze && len(actionChain) == 0 && (regexScoper != nil || len(grammarScopers) > 0),
	}

	if opts.files != "" {
		return runMultiFile(cmd, p)
	}
	return runSingleStream(cmd, p)
}

func validateExclusivity(args []string) error {
	exclusive := 0
	for _, b := range []bool{opts.upper, opts.lower, opts.titlecase} {
		if b {
			exclusive++
		}
	}
	if exclusive > 1 {
		return errs.NewConfiguration("--upper, --lower, and --titlecase are mutually exclusive", nil)
	}
	if opts.delete && len(args) > 1 {
		return errs.NewConfiguration("a replacement argument is not allowed together with --delete", nil)
	}
	if opts.failAny && opts.failNone {
		return errs.NewConfiguration("--fail-any and --fail-none are mutually exclusive", nil)
	}
	if !hasExplicitScope(args) {
		if opts.delete {
			return errs.NewConfiguration("--delete requires an explicit SCOPE argument", nil)
		}
		if opts.squeeze {
			return errs.NewConfiguration("--squeeze-repeats requires an explicit SCOPE argument", nil)
		}
	}
	return nil
}

// hasExplicitScope reports whether the user supplied a non-empty SCOPE
// positional argument, as opposed to relying on the implicit whole-input
// default scope.
func hasExplicitScope(args []string) bool {
	return len(args) >= 1 && args[0] != ""
}

func buildGrammarScopers(backend treesitter.Backend) ([]scope.Scoper, error) {
	var scopers []scope.Scoper
	for _, lf := range languageFlags {
		if lf.queryName == "" && lf.rawQuery == "" {
			continue
		}
		s, err := lang.Compile(backend, lang.Spec{Language: lf.lang, Name: lf.queryName, Raw: lf.rawQuery})
		if err != nil {
			return nil, errs.NewConfiguration(fmt.Sprintf("compiling %s query", lf.flagName), err)
		}
		scopers = append(scopers, s)
	}
	return scopers, nil
}

func buildActions(args []string) (actions.Chain, error) {
	var chain actions.Chain

	if !opts.delete && len(args) == 2 {
		chain = append(chain, actions.Replace{With: args[1]})
	}
	if opts.delete {
		chain = append(chain, actions.Delete{})
	}
	if opts.symbols {
		chain = append(chain, actions.Symbols{Invert: opts.symbolsInvert})
	}
	if opts.german {
		wl, err := germanWordList()
		if err != nil {
			return nil, err
		}
		chain = append(chain, actions.German{WordList: wl, Policy: germanPolicy()})
	}
	switch {
	case opts.titlecase:
		chain = append(chain, actions.Titlecase{})
	case opts.upper:
		chain = append(chain, actions.Upper{})
	case opts.lower:
		chain = append(chain, actions.Lower{})
	}
	if opts.normalize {
		chain = append(chain, actions.Normalize{})
	}

	return chain, nil
}

func germanPolicy() german.Policy {
	switch {
	case opts.germanNaive:
		return german.PolicyNaive
	case opts.germanPreferOriginal:
		return german.PolicyPreferOriginal
	default:
		return german.PolicyDefault
	}
}

func germanWordList() (german.WordList, error) {
	if opts.germanWordlist == "" {
		return german.DefaultWordList(), nil
	}
	wl, err := german.LoadWordList(opts.germanWordlist)
	if err != nil {
		return nil, errs.NewConfiguration("loading --german-wordlist", err)
	}
	return wl, nil
}

func runSingleStream(cmd *cobra.Command, p *pipeline.Pipeline) error {
	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errs.NewIO("stdin", err)
	}

	res, err := p.Run(string(input))
	if err != nil {
		return errs.NewConfiguration("running pipeline", err)
	}

	out := cmd.OutOrStdout()
	if p.SearchMode {
		for _, span := range res.Spans {
			fmt.Fprintf(out, "%d:%s\n", span.Line, span.Text)
		}
	} else {
		fmt.Fprint(out, res.Output)
	}

	return applyExitPolicy(res.Matched)
}

func runMultiFile(cmd *cobra.Command, p *pipeline.Pipeline) error {
	results, err := driver.Run(context.Background(), opts.files, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	anyMatched := false
	var firstIOErr error
	for _, r := range results {
		if r.Matched {
			anyMatched = true
		}
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "srgn: %s: %v\n", r.Path, r.Err)
			if firstIOErr == nil {
				firstIOErr = r.Err
			}
			continue
		}
		if r.Changed {
			fmt.Fprintf(out, "changed: %s\n", r.Path)
		}
	}

	if firstIOErr != nil {
		return firstIOErr
	}
	return applyExitPolicy(anyMatched)
}

func applyExitPolicy(matched bool) error {
	if opts.failAny && matched {
		return errs.NewPolicy("a match occurred and --fail-any was set")
	}
	if opts.failNone && !matched {
		return errs.NewPolicy("no match occurred and --fail-none was set")
	}
	return nil
}

func emitCompletions(cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletion(out)
	default:
		return errs.NewConfiguration("unknown shell for --completions: "+shell, nil)
	}
}
