package matrix_test

import (
	"testing"

	"github.com/katalvlaran/wavefront/matrix"
)

// BenchmarkSquare_Seed measures seeding cost at a realistic side length.
func BenchmarkSquare_Seed(b *testing.B) {
	m, err := matrix.NewSquare(1 << 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Seed()
	}
}

// BenchmarkSquare_Set measures a symmetric write.
func BenchmarkSquare_Set(b *testing.B) {
	m, err := matrix.NewSquare(1 << 10)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Set(1, 2, float64(i))
	}
}
