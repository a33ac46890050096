package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/wavefront/matrix"
)

// ExampleSquare_Seed builds a 4×4 store and shows the deterministic seed.
func ExampleSquare_Seed() {
	m, _ := matrix.NewSquare(4)
	_ = m.Seed()

	for i := 0; i < m.Len(); i++ {
		v, _ := m.At(i, i)
		fmt.Printf("%g ", v)
	}
	// Output: 0.25 0.5 0.75 1
}

// ExampleSquare_Set demonstrates the symmetric write contract.
func ExampleSquare_Set() {
	m, _ := matrix.NewSquare(3)
	_ = m.Seed()
	_ = m.Set(0, 2, 1.25)

	upper, _ := m.At(0, 2)
	lower, _ := m.At(2, 0)
	fmt.Println(upper, lower)
	// Output: 1.25 1.25
}
