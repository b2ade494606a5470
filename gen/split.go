package gen

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// StreamSpec is one output stream of the oversize/distance split: events
// within Threshold meters of more than DOMLimit sensors are routed to this
// stream and simulated with the given oversize factor. The routing decision
// itself is made downstream; the generator only supplies this metadata.
type StreamSpec struct {
	Threshold      float64
	DOMLimit       float64
	OversizeFactor float64
}

// Name returns the stream's identifier, derived from its threshold.
func (s StreamSpec) Name() string {
	return fmt.Sprintf("split%05dm", int(s.Threshold))
}

// TransformFilepath derives this stream's output path from the base output
// path by suffixing the stream name before the (possibly compound) file
// extension: out.i3.bz2 -> out_split02000m.i3.bz2.
func (s StreamSpec) TransformFilepath(path string) string {
	dir, file := filepath.Split(path)
	base, ext := file, ""
	if i := strings.Index(file, "."); i >= 0 {
		base, ext = file[:i], file[i:]
	}
	return dir + base + "_" + s.Name() + ext
}

// NormalizeSplits turns the raw split configuration into a sorted list of
// stream specs. A single DOM limit is broadcast across all thresholds; any
// other length mismatch is a configuration error. The three lists are
// co-sorted by ascending threshold. Empty thresholds disable splitting.
func NormalizeSplits(thresholds, domLimits, oversizeFactors []float64) ([]StreamSpec, error) {
	if len(thresholds) == 0 {
		return nil, nil
	}
	if len(domLimits) == 1 && len(thresholds) > 1 {
		limit := domLimits[0]
		domLimits = make([]float64, len(thresholds))
		for i := range domLimits {
			domLimits[i] = limit
		}
	}
	if len(domLimits) != len(thresholds) {
		return nil, configErrorf("threshold_doms has %d entries, want 1 or %d",
			len(domLimits), len(thresholds))
	}
	if len(oversizeFactors) != len(thresholds) {
		return nil, configErrorf("oversize_factors has %d entries, want %d",
			len(oversizeFactors), len(thresholds))
	}

	specs := make([]StreamSpec, len(thresholds))
	for i := range thresholds {
		specs[i] = StreamSpec{
			Threshold:      thresholds[i],
			DOMLimit:       domLimits[i],
			OversizeFactor: oversizeFactors[i],
		}
	}
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Threshold < specs[j].Threshold
	})
	return specs, nil
}
