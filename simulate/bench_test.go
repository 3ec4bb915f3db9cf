package simulate_test

import (
	"testing"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/simulate"
)

// BenchmarkRun_Lab measures one full patrol of the canonical layout,
// including the clone each run needs.
func BenchmarkRun_Lab(b *testing.B) {
	base := grid.MustParse(lab)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = simulate.Run(base.Clone())
	}
}
