package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fseof/matrix"
)

// ExampleRowReduce removes a duplicated equation.
func ExampleRowReduce() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 1)
	_ = a.Set(1, 0, 2)
	_ = a.Set(1, 1, 2)

	red, err := matrix.RowReduce(a, []float64{1, 2})
	fmt.Println("rank:", red.Rank, "err:", err)

	// Output:
	// rank: 1 err: <nil>
}
