// Package driver implements the multi-file mode: glob resolution, a
// bounded worker pool running the pipeline per file, and atomic in-place
// rewrites, with a stable, serial reporting pass once all files complete.
package driver

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/go-srgn/srgn/internal/errs"
	"github.com/go-srgn/srgn/internal/log"
	"github.com/go-srgn/srgn/pkg/pipeline"
)

// FileResult is the per-file outcome of a driver run. Run returns results
// sorted lexicographically by path, per §5's ordering guarantee.
type FileResult struct {
	Path    string
	Changed bool
	Matched bool
	Err     error
}

// Run resolves glob against the working directory, runs p concurrently
// across every matched file with a worker pool sized to GOMAXPROCS, and
// atomically rewrites each file whose output differs from its input.
// Results are returned sorted lexicographically by path.
func Run(ctx context.Context, glob string, p *pipeline.Pipeline) ([]FileResult, error) {
	paths, err := doublestar.FilepathGlob(glob)
	if err != nil {
		return nil, errs.NewConfiguration("invalid glob pattern "+glob, err)
	}

	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = processFile(path, p)
			return nil
		})
	}
	// Per-file errors are carried in FileResult and do not abort the
	// batch; g.Wait only ever surfaces a context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	for _, r := range results {
		if r.Err != nil {
			log.Warn("file failed", "path", r.Path, "error", r.Err)
		} else if r.Changed {
			log.Info("file changed", "path", r.Path)
		}
	}

	return results, nil
}

func processFile(path string, p *pipeline.Pipeline) FileResult {
	input, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: errs.NewIO(path, err)}
	}

	res, err := p.Run(string(input))
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	if !res.Matched {
		return FileResult{Path: path, Matched: false}
	}
	if p.SearchMode {
		return FileResult{Path: path, Matched: true}
	}

	changed := res.Output != string(input)
	log.Trace("content fingerprint",
		"path", path,
		"before", hashHex(input),
		"after", hashHex([]byte(res.Output)),
		"changed", changed,
	)

	if !changed {
		return FileResult{Path: path, Matched: true}
	}

	if err := atomicWrite(path, []byte(res.Output)); err != nil {
		return FileResult{Path: path, Matched: true, Err: errs.NewIO(path, err)}
	}

	return FileResult{Path: path, Changed: true, Matched: true}
}

// atomicWrite writes data to a temp file in dir's directory, then renames
// it over path, so a crash mid-write never leaves a truncated file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".srgn-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	info, statErr := os.Stat(path)
	if statErr == nil {
		_ = os.Chmod(tmpPath, info.Mode())
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// hashHex computes the xxHash64 of data as a hex string, for trace-level
// change-detection logging only — the write decision above always compares
// full bytes, never the hash alone.
func hashHex(data []byte) string {
	h := xxhash.Sum64(data)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(buf[:])
}
