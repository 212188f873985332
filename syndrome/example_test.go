package syndrome_test

import (
	"fmt"

	"github.com/nathanhack/gltc/syndrome"
)

func ExampleConstruct() {
	m, err := syndrome.Construct([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, p := range m.BasisMap() {
		fmt.Println(p.Basis, "->", p.Syndrome)
	}
	rows, cols := syndrome.Shape(m.ParityCheckMatrix())
	fmt.Println(rows, "x", cols)

	// Output:
	// [0, 0, 1] -> [0, 0, 1]
	// [0, 1, 0] -> [0, 1, 0]
	// [1, 0, 0] -> [0, 1, 1]
	// 2 x 3
}

func ExampleConstruct_missingResidual() {
	_, err := syndrome.Construct([][]int{
		{1, 0, 0},
		{1, 1, 0},
	})
	fmt.Println(err)

	// Output:
	// syndrome construction failed: residual pattern has no syndrome: dimension 2 basis [1, 0, 0] member [1, 1, 0] residual [0, 1, 0]
}
