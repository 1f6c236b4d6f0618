package preflight

import (
	"path/filepath"

	"discdump/internal/config"
	"discdump/internal/deps"
	"discdump/internal/execctx"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll checks the configured directories and every program binary.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
	}
	for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
		results = append(results, fromStatus(status))
	}
	return results
}

// CheckOutput verifies that the directory ctx writes its image into is
// usable. Contexts without an output path pass.
func CheckOutput(ctx execctx.Context) Result {
	const name = "Image directory"
	out := ctx.OutputPath()
	if out == "" {
		return Result{Name: name, Passed: true, Detail: "no output path"}
	}
	return CheckDirectoryAccess(name, filepath.Dir(out))
}

// Failed returns the results that did not pass and are not optional.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			out = append(out, r)
		}
	}
	return out
}

func fromStatus(s deps.Status) Result {
	r := Result{Name: s.Name(), Passed: s.Available, Optional: s.Optional, Detail: s.Detail}
	if s.Available {
		r.Detail = s.Path
	}
	return r
}
