package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-srgn/srgn/pkg/actions"
	"github.com/go-srgn/srgn/pkg/pipeline"
)

func TestRunRewritesOnlyChangedFiles(t *testing.T) {
	dir := t.TempDir()

	mustWrite := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("a.txt", "hello")
	mustWrite("b.txt", "HELLO")

	p := &pipeline.Pipeline{Actions: actions.Chain{actions.Upper{}}}

	results, err := Run(context.Background(), filepath.Join(dir, "*.txt"), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byPath := map[string]FileResult{}
	for _, r := range results {
		byPath[filepath.Base(r.Path)] = r
	}

	if !byPath["a.txt"].Changed {
		t.Error("a.txt should have been rewritten (hello -> HELLO)")
	}
	if byPath["b.txt"].Changed {
		t.Error("b.txt should not be rewritten (already HELLO)")
	}

	gotA, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(gotA) != "HELLO" {
		t.Errorf("a.txt content = %q, want HELLO", gotA)
	}
}

func TestRunReportsPerFileIOErrorsWithoutAbortingBatch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A directory matching the glob cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, "bad.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	p := &pipeline.Pipeline{Actions: actions.Chain{actions.Upper{}}}
	results, err := Run(context.Background(), filepath.Join(dir, "*.txt"), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	if filepath.Base(results[0].Path) != "bad.txt" || results[0].Err == nil {
		t.Errorf("results[0] = %+v, want an error for bad.txt", results[0])
	}
	if filepath.Base(results[1].Path) != "ok.txt" || results[1].Err != nil || !results[1].Changed {
		t.Errorf("results[1] = %+v, want ok.txt rewritten without error", results[1])
	}
}
