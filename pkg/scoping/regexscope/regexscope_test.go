package regexscope

import (
	"testing"

	"github.com/go-srgn/srgn/pkg/scope"
)

func collect(t *testing.T, s *Scoper, text string) []scope.Run {
	t.Helper()
	runs, err := s.Scope(text)
	if err != nil {
		t.Fatalf("Scope(%q) error: %v", text, err)
	}
	return runs
}

func TestNoCaptureGroupsScopesWholeMatch(t *testing.T) {
	s, err := New("H", false)
	if err != nil {
		t.Fatal(err)
	}
	if s.HasCaptureGroups() {
		t.Error("HasCaptureGroups() = true, want false")
	}

	sc := scope.FromWhole("Hello, World!")
	narrowed, err := sc.Narrow(s)
	if err != nil {
		t.Fatal(err)
	}
	got := narrowed.Transform(func(string) string { return "J" })
	if want := "Jello, World!"; got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestCaptureGroupsScopePerCodePoint(t *testing.T) {
	s, err := New(`(ghp_[[:alnum:]]+)`, false)
	if err != nil {
		t.Fatal(err)
	}
	if !s.HasCaptureGroups() {
		t.Error("HasCaptureGroups() = false, want true")
	}

	sc := scope.FromWhole("Hide ghp_th15 and ghp_th4t")
	narrowed, err := sc.Narrow(s)
	if err != nil {
		t.Fatal(err)
	}
	got := narrowed.Transform(func(string) string { return "*" })
	if want := "Hide ******** and ********"; got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestLiteralModeEscapesMetacharacters(t *testing.T) {
	s, err := New("a.b", true)
	if err != nil {
		t.Fatal(err)
	}

	runs := collect(t, s, "a.b axb")
	var inTexts []string
	for _, r := range runs {
		if r.In {
			inTexts = append(inTexts, r.Text)
		}
	}
	if len(inTexts) != 1 || inTexts[0] != "a.b" {
		t.Errorf("literal match = %v, want exactly one match of %q", inTexts, "a.b")
	}
}

func TestZeroWidthMatchesDoNotLoopForever(t *testing.T) {
	s, err := New(`(?=o)`, false)
	if err != nil {
		t.Fatal(err)
	}
	runs := collect(t, s, "foo")
	if len(runs) == 0 {
		t.Fatal("expected at least one run")
	}
	var reassembled string
	for _, r := range runs {
		reassembled += r.Text
	}
	if reassembled != "foo" {
		t.Errorf("reassembled = %q, want %q", reassembled, "foo")
	}
}
