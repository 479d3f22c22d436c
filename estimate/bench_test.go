package estimate_test

import (
	"testing"

	"github.com/katalvlaran/prunesize/estimate"
)

// BenchmarkEstimate_Full benchmarks every mode over the full 9×13 physical grid.
func BenchmarkEstimate_Full(b *testing.B) {
	modes := estimate.Modes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range modes {
			if _, err := estimate.Estimate(m, 9, 13); err != nil {
				b.Fatalf("Estimate(%s) failed: %v", m, err)
			}
		}
	}
}
