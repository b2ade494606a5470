package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/icesim/eventgen/gen"
)

// runFolder groups runs into folders of one thousand: run 1337 lives in
// "1000-1999".
func runFolder(runNumber int) string {
	base := (runNumber / 1000) * 1000
	return fmt.Sprintf("%d-%d", base, base+999)
}

// expandPattern substitutes the placeholders supported in outfile patterns.
// Run numbers are zero-padded to eight digits.
func expandPattern(pattern string, datasetNumber, runNumber int) string {
	r := strings.NewReplacer(
		"{run_number}", fmt.Sprintf("%08d", runNumber),
		"{dataset_number}", fmt.Sprintf("%d", datasetNumber),
		"{run_folder}", runFolder(runNumber),
	)
	return r.Replace(pattern)
}

// resolveOutfile picks the scratch or final output pattern and expands it.
// An empty pattern falls back to a per-run default in the working directory.
func resolveOutfile(cfg *gen.RunConfig, runNumber int, scratch bool) string {
	pattern := cfg.OutfilePattern
	if scratch && cfg.ScratchfilePattern != "" {
		pattern = cfg.ScratchfilePattern
	}
	if pattern == "" {
		pattern = "events_{run_number}.jsonl"
	}
	out := expandPattern(pattern, cfg.DatasetNumber, runNumber)
	if scratch && overrides.ScratchDir != "" && !filepath.IsAbs(out) {
		out = filepath.Join(overrides.ScratchDir, out)
	}
	return out
}
