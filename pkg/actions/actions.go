// Package actions implements the per-run text transformations applied to a
// scope after narrowing: Replace, Delete, Symbols, German,
// Titlecase/Upper/Lower, and Normalize, applied in that fixed order
// regardless of CLI order. Squeeze is not here: it collapses consecutive
// in-scope runs themselves rather than transforming one run's text, so it
// lives on scope.RangedScope and runs before this chain.
package actions

// Action transforms the text of a single in-scope run. Actions never see
// out-of-scope text; the pipeline applies them only via scope.Transform.
type Action interface {
	Apply(text string) string
}

// Func adapts a plain function to the Action interface.
type Func func(text string) string

// Apply implements Action.
func (f Func) Apply(text string) string { return f(text) }

// Chain composes actions in the given order, feeding each action's output to
// the next.
type Chain []Action

// Apply runs every action in order over text.
func (c Chain) Apply(text string) string {
	for _, a := range c {
		text = a.Apply(text)
	}
	return text
}
