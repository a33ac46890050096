package wavefront_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wavefront/matrix"
	"github.com/katalvlaran/wavefront/wavefront"
)

// BenchmarkSequential measures the reference sweep at growing side lengths.
func BenchmarkSequential(b *testing.B) {
	for _, n := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m, err := matrix.NewSquare(n)
				if err != nil {
					b.Fatal(err)
				}
				if err = m.Seed(); err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if err = wavefront.Sequential(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkChunks measures partitioning cost for both policies.
func BenchmarkChunks(b *testing.B) {
	const diagLength, workers = 1 << 14, 15
	static := wavefront.StaticPolicy{Workers: workers, MaxChunk: wavefront.DefaultMaxChunk}

	b.Run("static", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = wavefront.Chunks(1, diagLength, workers, static)
		}
	})
	b.Run("dynamic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = wavefront.Chunks(1, diagLength, workers, wavefront.DynamicPolicy{})
		}
	})
}
